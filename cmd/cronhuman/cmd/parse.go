package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
	"github.com/jdziat/cronhuman/pkg/translator"
)

func newParseCmd(a *app) *cobra.Command {
	var showFields bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Convert cron expression to human-readable text",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			expr, err := parser.Parse(expression)
			if err != nil {
				return a.reportError(cmd, err)
			}
			a.logger.Debug("expression parsed", "expression", expression, "fields", expr.FieldCount)

			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.success.Render("✓ Cron Expression:"), s.value.Render(expression))
			fmt.Fprintln(out, s.success.Render("✓ Human Readable:"), s.accent.Render(translator.Describe(expr)))

			if showFields {
				fmt.Fprintln(out)
				for _, f := range core.SecondsFields {
					d, ok := expr.Field(f)
					if !ok {
						continue
					}
					fmt.Fprintf(out, "  %s %s %s\n",
						s.label.Render(fmt.Sprintf("%-8s", f)),
						s.muted.Render(fmt.Sprintf("%-9s", d.Kind)),
						s.value.Render(joinInts(d.Values)))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showFields, "fields", "f", false, "show the resolved values of each field")
	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
