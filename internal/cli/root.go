// Package cli содержит команды интервьюера.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interviewer",
	Short: "Autonomous customer interviewer on Groq",
	Long: `Generates interview questions, simulates a customer interview, analyzes it
and merges the learnings, using Llama 3 on Groq. Access is limited to the
email addresses listed in the access sheet.`,
	SilenceUsage: true,
}

// Execute запускает CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
