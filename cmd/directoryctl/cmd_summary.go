package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print headcount and service length statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, dir *service.DirectoryService) error {
			dash, err := service.NewDashboardService(dir, nil).Dashboard(ctx)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), dash)
			}
			return writeSummary(cmd.OutOrStdout(), dash)
		})
	},
}

func writeSummary(out io.Writer, dash models.Dashboard) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	s := dash.Summary
	fmt.Fprintf(w, "Total staff\t%d\n", s.TotalStaff)
	fmt.Fprintf(w, "Executive\t%d\n", s.Executive)
	fmt.Fprintf(w, "Attorneys\t%d\n", s.Attorneys)
	fmt.Fprintf(w, "Support staff\t%d\n", s.SupportStaff)
	fmt.Fprintf(w, "Interns\t%d\n", s.Interns)
	fmt.Fprintf(w, "Pets\t%d\n", s.Pets)

	svc := dash.Service
	fmt.Fprintf(w, "\nService (n=%d)\tdays\tyears\n", svc.Population)
	fmt.Fprintf(w, "Mean\t%d\t%d\n", svc.MeanDays, svc.MeanYears)
	fmt.Fprintf(w, "Median\t%d\t%d\n", svc.MedianDays, svc.MedianYears)
	fmt.Fprintf(w, "Min\t%d\t%.2f\n", svc.MinDays, svc.MinYears)
	fmt.Fprintf(w, "Max\t%d\t%.2f\n", svc.MaxDays, svc.MaxYears)
	return w.Flush()
}
