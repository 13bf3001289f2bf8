package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DriesFaems/interview-generator-students/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interview form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, cfg, err := buildService(ctx)
		if err != nil {
			return err
		}

		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		fmt.Println("🚀 Starting Autonomous Customer Interviewer...")
		info := cfg.LLM.GetModelInfo()
		fmt.Printf("• Model: %s (%s, max_tokens=%v, temperature=%v)\n", info["model"], info["provider"], info["max_tokens"], info["temperature"])
		fmt.Printf("• Storage: %s\n", cfg.Storage.Backend)
		fmt.Printf("• Listening on :%d\n", cfg.Server.Port)

		return web.NewServer(svc, cfg.Server, cfg.LLM).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides SERVER_PORT)")
}
