package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/atikulmunna/logan/internal/aggregator"
	"github.com/atikulmunna/logan/internal/analyzer"
	"github.com/atikulmunna/logan/internal/logging"
	"github.com/atikulmunna/logan/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time via -ldflags "-X".
var version = "dev"

// newRootCmd builds the logan command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "logan <logfile>",
		Short: "Logan summarizes log levels and frequent errors",
		Long: `Logan analyzes a log file whose lines look like

  YYYY-MM-DD HH:MM:SS [LEVEL] message

and reports how many entries each level (INFO, WARN, ERROR, DEBUG) has along
with the most frequent ERROR messages. Malformed lines are skipped.

Examples:
  logan app.log
  logan app.log --hours 24 --level ERROR
  logan app.log --format json`,
		Version:       version,
		Args:          logFileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, v, args[0])
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.logan.yaml or ./.logan.yaml)")

	flags := cmd.Flags()
	flags.Float64("hours", 0, "only include entries from the last N hours")
	flags.StringP("level", "l", "", "only include entries of this level: INFO, WARN, ERROR, DEBUG")
	flags.StringP("format", "o", string(output.FormatText), "output format: text, json")
	flags.Int("top", aggregator.DefaultTopN, "number of top error messages to list")
	flags.Bool("no-color", false, "disable colored text output")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	cobra.CheckErr(v.BindPFlags(flags))

	return cmd
}

// logFileArg requires exactly one positional log file path.
func logFileArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing required argument: path to log file")
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, v *viper.Viper, path string) error {
	s, err := loadSettings(v)
	if err != nil {
		return err
	}

	logger := logging.Init(cmd.ErrOrStderr(), s.logLevel)

	renderer, err := output.NewRenderer(s.format, cmd.OutOrStdout(), s.color)
	if err != nil {
		return err
	}

	result, _, err := analyzer.AnalyzeFile(path, analyzer.Options{
		Criteria: s.criteria,
		TopN:     s.topN,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return renderer.Render(result)
}
