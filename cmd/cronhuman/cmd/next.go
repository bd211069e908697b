package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/cronhuman/pkg/schedule"
	"github.com/jdziat/cronhuman/pkg/translator"
)

func newNextCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Show next execution times",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			description, err := translator.ToHuman(expression)
			if err != nil {
				return a.reportError(cmd, err)
			}

			executions, err := schedule.NextExecutions(expression,
				schedule.Count(a.config.GetInt("count")),
				schedule.Layout(a.config.GetString("layout")),
				schedule.WithLogger(a.logger),
			)
			if err != nil {
				return a.reportError(cmd, err)
			}

			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.success.Render("✓ Cron Expression:"), s.value.Render(expression))
			fmt.Fprintln(out, s.success.Render("✓ Description:"), s.accent.Render(description))
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.success.Render(fmt.Sprintf("✓ Next %d executions:", len(executions))))
			for i, exec := range executions {
				fmt.Fprintln(out, s.label.Render(fmt.Sprintf("  %d.", i+1)), s.value.Render(exec.Formatted))
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 5, "number of executions to show")
	cmd.Flags().String("layout", schedule.DefaultLayout, "Go time layout for each execution")
	return cmd
}
