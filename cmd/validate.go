package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"nric.dev/pkg/nric/internal/domain"
)

const validateLongDescription = `Validate identity numbers given as arguments and/or read from files.

Files hold one candidate per line; blank lines and lines starting with # are
skipped. Use "-" to read standard input, a directory to read every file in it,
or dir/... to include sub-directories. Matching is case-sensitive.

With --strict the command exits non-zero when any candidate is invalid.`

var validateFilesFlag []string
var validateStrictFlag bool

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [candidates...]",
		Short: "Validate identity numbers",
		Long:  validateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cmd.Flags().GetStringArray(fileFlagName)
			if err != nil {
				return err
			}

			if len(args) == 0 && len(files) == 0 {
				return cmd.Help()
			}

			_, err = workflow.Validate(cmd.Context(), domain.ValidateArgs{
				Candidates: args,
				Files:      parsePaths(files),
				Strict:     viper.GetBool(strictConfigKey),
				Reports:    reportsDir(),
			})

			return err
		},
	}

	cmd.Flags().StringArrayVarP(&validateFilesFlag, fileFlagName, "f", nil, "read candidates from a file, directory or - for stdin (can be repeated)")

	cmd.Flags().BoolVar(&validateStrictFlag, strictFlagName, viper.GetBool(strictConfigKey), "exit with an error when any candidate is invalid")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}
