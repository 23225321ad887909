package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcpao-csu/staff-directory-api/internal/directory"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
)

var birthdayMonth int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List staff birthdays for a month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := birthdayMonth
		if !cmd.Flags().Changed("month") {
			month = int(time.Now().Month())
		}
		return withDirectory(cmd, func(ctx context.Context, dir *service.DirectoryService) error {
			entries, err := dir.Birthdays(ctx, month)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			return writeBirthdays(cmd.OutOrStdout(), entries)
		})
	},
}

func init() {
	birthdaysCmd.Flags().IntVar(&birthdayMonth, "month", 0, "Month 1-12, 0 for all (default current month)")
}

func writeBirthdays(out io.Writer, entries []models.BirthdayEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Label, directory.DisplayName(e.Row), e.Row.WorkEmail)
	}
	return w.Flush()
}
