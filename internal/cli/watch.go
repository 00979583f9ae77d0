package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-flow/internal/processor"
	"github.com/nguyentantai21042004/meeting-flow/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process every recording dropped into the inbox with the configured steps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()
		flags := resolveFlags(nil, a.cfg.Steps)
		creds := resolveCredentials(nil, a.cfg.SMTP, a.env)

		proc, err := a.processor(flags)
		if err != nil {
			return err
		}

		handler := func(ctx context.Context, audioPath string) error {
			_, err := proc.Process(ctx, processor.Request{
				Session:     a.session,
				Audio:       audioPath,
				Flags:       flags,
				Credentials: &creds,
				Wait:        true,
			})
			if err != nil {
				a.presenter.Failure(err)
			}
			return err
		}

		w, err := watcher.New(a.cfg.Paths.Inbox, filepath.Join(a.cfg.Paths.Inbox, "processed"), handler, a.log)
		if err != nil {
			return err
		}
		defer w.Stop()

		a.log.Info(ctx, "Steps: summarize=%t actions=%t email=%t send=%t", flags.Summarize, flags.Actions, flags.Email, flags.Send)
		a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
		a.log.Info(ctx, "Press Ctrl+C to stop")

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
