// Command directoryctl builds the staff directory straight from the database and prints
// analytics or writes exports without going through the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jcpao-csu/staff-directory-api/internal/repository"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
	"github.com/jcpao-csu/staff-directory-api/pkg/config"
	"github.com/jcpao-csu/staff-directory-api/pkg/database"
)

var (
	timeout    time.Duration
	jsonOutput bool

	// openDirectory is replaced in tests.
	openDirectory = openDatabaseDirectory
)

var rootCmd = &cobra.Command{
	Use:           "directoryctl",
	Short:         "Inspect and export the JCPAO staff directory",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openDatabaseDirectory(ctx context.Context) (*service.DirectoryService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewDirectoryRepository(db, cfg.Directory.EmployeeView, cfg.Directory.PetView)
	svc := service.NewDirectoryService(repo, nil, nil, service.DirectoryServiceConfig{BuildTimeout: timeout}, zap.NewNop())
	return svc, func() { _ = db.Close() }, nil
}

// withDirectory opens the directory for the duration of fn.
func withDirectory(cmd *cobra.Command, fn func(ctx context.Context, dir *service.DirectoryService) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	dir, closeFn, err := openDirectory(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, dir)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
