package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
	"github.com/jcpao-csu/staff-directory-api/pkg/export"
)

var (
	exportFormat string
	exportOut    string
	exportFilter models.FilterSpec
	exportMonth  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered directory to a CSV, PDF or XLSX file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		renderer, err := export.RendererFor(format)
		if err != nil {
			return err
		}
		filter := exportFilter
		if cmd.Flags().Changed("month") {
			if exportMonth < 1 || exportMonth > 12 {
				return fmt.Errorf("month must be between 1 and 12")
			}
			month := exportMonth
			filter.BirthMonth = &month
		}
		out := exportOut
		if out == "" {
			out = "staff_directory." + renderer.Extension()
		}

		return withDirectory(cmd, func(ctx context.Context, dir *service.DirectoryService) error {
			rows, err := dir.Filter(ctx, filter)
			if err != nil {
				return err
			}
			payload, err := renderer.Render(service.Dataset(rows, "JCPAO Staff Directory"))
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), out)
			return nil
		})
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFormat, "format", "csv", "csv, pdf or xlsx")
	f.StringVarP(&exportOut, "out", "o", "", "Output file (default staff_directory.<ext>)")
	f.StringVar(&exportFilter.Position, "position", "", "Position code")
	f.StringVar(&exportFilter.Unit, "unit", "", "Unit code")
	f.StringVar(&exportFilter.OfficeLocation, "office", "", "Office location")
	f.StringVar(&exportFilter.SearchText, "search", "", "Free text search")
	f.IntVar(&exportMonth, "month", 0, "Birth month 1-12")
}
