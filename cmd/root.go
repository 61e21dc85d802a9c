// Package cmd provides the root command and CLI setup for ctestfmt.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Wattsy2020/cpp-learning/internal/adapter"
	"github.com/Wattsy2020/cpp-learning/internal/controller"
	"github.com/Wattsy2020/cpp-learning/internal/domain"
	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// logFileFlag overrides the log file location for a single invocation.
var logFileFlag string

// verboseFlag forces debug logging.
var verboseFlag bool

// modeFlag selects how the assertion operands are located on a line.
var modeFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const assertionFormatHelp = `Lines of the form

  assert(LHS == RHS)

are rewritten to

  ctest::assert_equal(LHS, RHS);

with one layer of enclosing parentheses removed from each operand.
Every other line is kept byte for byte.`

const rootLongDescription = `ctestfmt migrates inline C++ equality assertions to the ctest helper.

` + assertionFormatHelp

const runLongDescription = `Rewrite the given files in place.

` + assertionFormatHelp

const listLongDescription = `List the given files and the number of assertions each would rewrite.

` + assertionFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ctestfmt",
		Short: "C++ assertion rewriting tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its persistent flags wired, used
// to assemble isolated command trees.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(
		&modeFlag, modeFlagName,
		viper.GetString(modeConfigKey),
		fmt.Sprintf("operand matching mode %v", m.MatchModes),
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(modeFlagName), modeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
