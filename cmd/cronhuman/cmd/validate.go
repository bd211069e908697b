package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/cronhuman/pkg/parser"
	"github.com/jdziat/cronhuman/pkg/security"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <expression>",
		Short: "Validate cron expression syntax",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			result := parser.Validate(expression)

			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			if result.Valid {
				fmt.Fprintln(out, s.success.Render("✓ Valid cron expression"))
				fmt.Fprintln(out, s.label.Render("  Expression:"), s.value.Render(expression))
				return nil
			}

			a.logger.Debug("validation failed", "expression", expression, "field", result.Field)
			fmt.Fprintln(out, s.failure.Render("✗ Invalid cron expression"))
			fmt.Fprintln(out, s.label.Render("  Expression:"), s.value.Render(security.SanitizeErrorMessage(expression)))
			if result.Field != "" {
				fmt.Fprintln(out, s.label.Render("  Field:"), s.accent.Render(result.Field))
			}
			fmt.Fprintln(out, s.failure.Render("  Error:"), security.SanitizeErrorMessage(result.Error))
			return errReported
		},
	}
}
