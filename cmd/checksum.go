package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"nric.dev/pkg/nric/internal/domain"
	m "nric.dev/pkg/nric/internal/model"
)

// checksumCmd represents the checksum command.
var checksumCmd = newChecksumCmd()

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checksum <letter> <digits>",
		Short:   "Compute the checksum letter for a classification letter and 7 digits",
		Example: "  nric checksum S 1234567",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) != 1 {
				return fmt.Errorf("%w: %q", domain.ErrInvalidClassification, args[0])
			}

			_, err := workflow.Checksum(cmd.Context(), domain.ChecksumArgs{
				Class:  m.Class(args[0][0]),
				Digits: args[1],
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}
