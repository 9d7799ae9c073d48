package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"nric.dev/pkg/nric/internal/domain"
	m "nric.dev/pkg/nric/internal/model"
)

const generateLongDescription = `Generate identity numbers for a birth year and residency.

Citizens get S (born before 2000) or T; everyone else gets F or G. Digits are
drawn from crypto/rand unless --seed is given, in which case the output is
reproducible for the same seed, count and --parallel.`

var generateBirthYearFlag int
var generateNonCitizenFlag bool
var generateResidencyFlag string
var generateCountFlag int
var generateSeedFlag uint64
var generateParallelFlag int

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate identity numbers",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			residency, err := generateResidency(cmd)
			if err != nil {
				return err
			}

			var seed *uint64
			if cmd.Flags().Changed(seedFlagName) {
				value := generateSeedFlag
				seed = &value
			}

			_, err = workflow.Generate(cmd.Context(), domain.GenerateArgs{
				BirthYear: generateBirthYearFlag,
				Residency: residency,
				Count:     viper.GetInt(countConfigKey),
				Workers:   viper.GetInt(parallelConfigKey),
				Seed:      seed,
				Reports:   reportsDir(),
				SpillDir:  viper.GetString(spillDirConfigKey),
			})

			return err
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generateBirthYearFlag, birthYearFlagName, "y", 0, "birth year of the holder")
	cobra.CheckErr(cmd.MarkFlagRequired(birthYearFlagName))

	cmd.Flags().BoolVar(&generateNonCitizenFlag, nonCitizenFlagName, false, "generate for a non-citizen (shorthand for --residency non-citizen)")

	cmd.Flags().StringVarP(&generateResidencyFlag, residencyFlagName, "r", viper.GetString(residencyConfigKey), "residency: citizen or non-citizen (aliases: pr, foreigner)")
	bindFlagToConfig(cmd.Flags().Lookup(residencyFlagName), residencyConfigKey)

	cmd.Flags().IntVarP(&generateCountFlag, countFlagName, "n", viper.GetInt(countConfigKey), "how many numbers to generate")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), countConfigKey)

	cmd.Flags().Uint64Var(&generateSeedFlag, seedFlagName, 0, "seed for reproducible output")

	cmd.Flags().IntVarP(&generateParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

// generateResidency resolves --non-citizen and --residency. Passing both is
// only an error when they disagree.
func generateResidency(cmd *cobra.Command) (m.Residency, error) {
	residency, err := m.ParseResidency(viper.GetString(residencyConfigKey))
	if err != nil {
		return "", err
	}

	if !generateNonCitizenFlag {
		return residency, nil
	}

	if cmd.Flags().Changed(residencyFlagName) && residency.IsCitizen() {
		return "", fmt.Errorf("--%s conflicts with --%s %s", nonCitizenFlagName, residencyFlagName, generateResidencyFlag)
	}

	return m.ResidencyOf(false), nil
}
