package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/meeting-flow/internal/report"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	sessionName string
)

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Meeting assistant: transcribe a recording, then summarize, extract action items and email a follow-up",
	Long: `assistant turns a meeting recording into a transcript and runs the selected steps over it:
summary, action items, a follow-up email draft and sending that email.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, os.Args[1:], os.Stderr)
}

// execute runs the command line in args and shows any error on errOut.
func execute(ctx context.Context, args []string, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		report.NewTerminal(errOut).Failure(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&sessionName, "session", "s", "", "Session name (default from config)")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}
