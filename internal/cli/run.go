package cli

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/processor"
	"github.com/spf13/cobra"
)

var runAudio string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Transcribe the current audio and run the selected steps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		flags := resolveFlags(cmd.Flags(), a.cfg.Steps)
		creds := resolveCredentials(cmd.Flags(), a.cfg.SMTP, a.env)

		proc, err := a.processor(flags)
		if err != nil {
			return err
		}

		out, err := proc.Process(cmd.Context(), processor.Request{
			Session:     a.session,
			Audio:       runAudio,
			Flags:       flags,
			Credentials: &creds,
		})
		if err != nil {
			return err
		}

		if out.MarkdownPath != "" {
			a.presenter.Notice("Report saved: %s", out.MarkdownPath)
		}
		if out.DocxPath != "" {
			a.presenter.Notice("Document saved: %s", out.DocxPath)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runAudio, "audio", "", "Audio file to process instead of the session's current audio")
	addStepFlags(runCmd.Flags())
	addSMTPFlags(runCmd.Flags())
}
