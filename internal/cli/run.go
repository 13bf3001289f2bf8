package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/DriesFaems/interview-generator-students/internal/interviewer"
)

var runReq interviewer.Request

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one interview from the terminal",
	Example: `  interviewer run --email a@whu.edu --painpoint "slow onboarding" --profile "SaaS admin"
  interviewer run --email a@whu.edu --painpoint "slow onboarding" --profile "SaaS admin" --prior "admins skip the tutorial"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svc, _, err := buildService(ctx)
		if err != nil {
			return err
		}

		if runReq.APIKey == "" {
			runReq.APIKey = os.Getenv("GROQ_API_KEY")
		}

		return runInterview(ctx, svc, runReq, cmd.OutOrStdout())
	},
}

func runInterview(ctx context.Context, svc *interviewer.Service, req interviewer.Request, out io.Writer) error {
	result, err := svc.Start(ctx, req)
	if errors.Is(err, interviewer.ErrEmptyEmail) {
		return fmt.Errorf("--email is required")
	}
	if err != nil {
		return err
	}

	for i, o := range result.Outputs {
		title := o.Title
		if title == "" {
			title = o.Task
		}
		fmt.Fprintf(out, "\n=== %d/%d %s ===\n\n%s\n", i+1, len(result.Outputs), title, o.Raw)
	}
	fmt.Fprintf(out, "\n✅ Interview %s finished in %s\n", result.RunID, result.Duration.Round(time.Millisecond))

	return nil
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runReq.Email, "email", "", "WHU email address listed in the access sheet")
	f.StringVar(&runReq.APIKey, "api-key", "", "Groq API key (defaults to GROQ_API_KEY)")
	f.StringVar(&runReq.Painpoint, "painpoint", "", "Painpoint to explore in the interview")
	f.StringVar(&runReq.CustomerProfile, "profile", "", "Profile of the customer to interview")
	f.StringVar(&runReq.PriorLearnings, "prior", "", "What you have learned so far about the painpoint")
}
