package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/cronhuman/pkg/translator"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <text...>",
		Short: "Generate cron expression from natural language",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			expression, err := translator.FromHuman(input)
			if err != nil {
				return a.reportError(cmd, err)
			}
			meaning, err := translator.ToHuman(expression)
			if err != nil {
				return a.reportError(cmd, err)
			}
			a.logger.Debug("phrase recognized", "input", input, "expression", expression)

			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.success.Render("✓ Input:"), s.value.Render(input))
			fmt.Fprintln(out, s.success.Render("✓ Cron Expression:"), s.accent.Render(expression))
			fmt.Fprintln(out, s.success.Render("✓ Meaning:"), s.label.Render(meaning))
			return nil
		},
	}
}
