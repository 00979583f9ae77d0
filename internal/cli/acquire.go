package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-flow/internal/acquire"
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download a recording's audio and make it the session's current audio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()
		path, err := acquire.New(a.cfg, a.exec, a.log).Download(ctx, args[0])
		if err != nil {
			return err
		}
		if err := a.store.SetLastAudio(ctx, a.session, path); err != nil {
			return err
		}
		a.presenter.Notice("Audio downloaded: %s", path)
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Store a local recording and make it the session's current audio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open recording: %w", err)
		}
		defer f.Close()

		path, err := acquire.SaveUpload(a.cfg.Paths.Uploads, filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		if err := a.store.SetLastAudio(cmd.Context(), a.session, path); err != nil {
			return err
		}
		a.presenter.Notice("File uploaded: %s", path)
		return nil
	},
}
