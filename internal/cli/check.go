package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DriesFaems/interview-generator-students/internal/access"
)

var checkCmd = &cobra.Command{
	Use:   "check <email>",
	Short: "Check whether an email address has access",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd.Context())
		if err != nil {
			return err
		}

		decision, err := svc.CheckAccess(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		switch decision {
		case access.DecisionGranted:
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s has access\n", access.Normalize(args[0]))
		case access.DecisionDenied:
			fmt.Fprintln(cmd.OutOrStdout(), access.DeniedMessage)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "Please enter your WHU email address")
		}
		return nil
	},
}
