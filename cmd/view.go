package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"nric.dev/pkg/nric/internal/domain"
	m "nric.dev/pkg/nric/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved reports",
		Long:  "View the generate and validate reports saved in the reports directory (--output).",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
