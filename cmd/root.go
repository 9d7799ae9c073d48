// Package cmd provides the root command and CLI setup for nric.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"nric.dev/pkg/nric/internal/adapter"
	"nric.dev/pkg/nric/internal/controller"
	"nric.dev/pkg/nric/internal/domain"
	m "nric.dev/pkg/nric/internal/model"
)

var reportStore adapter.ReportStore
var candidateAdapter adapter.CandidateFSAdapter
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noSaveFlag disables writing reports for generate and validate.
var noSaveFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	candidateAdapter = adapter.NewLocalCandidateFSAdapter(os.Stdin)
	workflow = domain.NewWorkflow(reportStore, candidateAdapter, ui)
}

const rootLongDescription = `nric generates and validates Singapore-style identity numbers.

An identity number is a classification letter (S, T, F or G), seven digits
and a checksum letter. The classification follows residency and whether the
holder was born before 2000; the checksum is a weighted modulo 11 sum of the
digits looked up in a per-residency letter table.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a root command with its flags, detached from rootCmd.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "nric",
		Short:        "Identity number generator and validator",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for generate/validate reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noSaveFlag, noSaveFlagName, viper.GetBool(noSaveFlagName), "do not write a report for this run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noSaveFlagName), noSaveFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
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
// An interrupt cancels the command's context.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	cancel()

	if err != nil {
		os.Exit(1)
	}
}

// reportsDir returns where generate and validate save reports, or "" when
// saving is disabled.
func reportsDir() m.Path {
	if viper.GetBool(noSaveFlagName) {
		return ""
	}

	return m.Path(viper.GetString(outputFlagName))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
