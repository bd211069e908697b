package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdziat/cronhuman/pkg/schedule"
	"github.com/jdziat/cronhuman/pkg/security"
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("reported")

// app carries state shared by all subcommands of one invocation.
type app struct {
	config  *viper.Viper
	cfgFile string
	logger  *slog.Logger
	styles  styles
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CRONHUMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("count", security.DefaultOccurrences)
	v.SetDefault("layout", schedule.DefaultLayout)
	v.SetDefault("verbose", false)
	v.SetDefault("no-color", false)
	return v
}

// NewRootCommand builds the command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{config: newConfig()}

	root := &cobra.Command{
		Use:   "cronhuman",
		Short: "Convert cron expressions to human-readable descriptions and vice versa",
		Long: `cronhuman explains cron expressions in plain English, builds them
from simple phrases, validates them and lists when they would next fire.

Commands:
  parse     - describe an expression
  generate  - build an expression from a phrase
  validate  - check an expression
  next      - list upcoming occurrences`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newParseCmd(a),
		newGenerateCmd(a),
		newValidateCmd(a),
		newNextCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration and prepares logging and styles.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.config.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if a.cfgFile != "" {
		a.config.SetConfigFile(a.cfgFile)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	level := slog.LevelInfo
	if a.config.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.styles = newStyles(cmd.OutOrStdout(), !a.config.GetBool("no-color"))

	a.logger.Debug("configuration loaded",
		"config_file", a.config.ConfigFileUsed(),
		"count", a.config.GetInt("count"),
		"layout", a.config.GetString("layout"))
	return nil
}

// Execute runs the root command against the process arguments.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	s := newStyles(w, true)
	fmt.Fprintln(w, s.failure.Render("✗ Error:"), security.SanitizeErrorMessage(err.Error()))
}

// reportError prints err with the command's styles and marks it reported.
func (a *app) reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), a.styles.failure.Render("✗ Error:"), security.SanitizeErrorMessage(err.Error()))
	return fmt.Errorf("%w: %w", errReported, err)
}

// usageArgs shows help when a command runs without its argument.
func usageArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%s requires an argument; see '%s --help'", cmd.Name(), cmd.CommandPath())
		}
		return nil
	}
}
