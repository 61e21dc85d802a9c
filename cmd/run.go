package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Wattsy2020/cpp-learning/internal/domain"
	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

var runParallelFlag int
var runKeepGoingFlag bool
var runReportFlag string
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Rewrite assertions in place",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				Paths:     parsePaths(args),
				Mode:      m.MatchMode(viper.GetString(modeConfigKey)),
				DryRun:    runDryRunFlag,
				KeepGoing: viper.GetBool(keepGoingConfigKey),
				Threads:   viper.GetInt(parallelConfigKey),
				Report:    m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files rewritten concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&runKeepGoingFlag, keepGoingFlagName, viper.GetBool(keepGoingConfigKey), "keep rewriting the remaining files after a failure")
	bindFlagToConfig(cmd.Flags().Lookup(keepGoingFlagName), keepGoingConfigKey)

	cmd.Flags().StringVar(&runReportFlag, reportFlagName, viper.GetString(reportConfigKey), "write a YAML report of every rewrite to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().BoolVarP(&runDryRunFlag, dryRunFlagName, "n", false, "show a diff of the rewrites without touching the files")
}
