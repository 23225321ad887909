package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <field>",
	Short: "Print one staff breakdown",
	Long:  "Fields: " + fieldNames() + ".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, ok := models.ParseAggregationField(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q, expected one of %s", args[0], fieldNames())
		}
		return withDirectory(cmd, func(ctx context.Context, dir *service.DirectoryService) error {
			res, err := service.NewDashboardService(dir, nil).Breakdown(ctx, field)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}
			return writeBreakdown(cmd.OutOrStdout(), res)
		})
	},
}

func fieldNames() string {
	names := make([]string, len(models.AggregationFields))
	for i, f := range models.AggregationFields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func writeBreakdown(out io.Writer, res models.AggregationResult) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s (n=%d)\tcount\tpercent\n", res.Field, res.PopulationSize)
	for _, g := range res.Groups {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", g.Display, g.Count, g.Percent)
	}
	return w.Flush()
}
