package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"c3media/internal/language"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var (
		lang   string
		mime   string
		audio  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "download <guid>",
		Short: "Download an event's recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guid, err := validateGUID(args[0])
			if err != nil {
				return err
			}
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			event, err := client.Event(cmd.Context(), guid)
			if err != nil {
				return err
			}
			recordings, err := client.EventRecordings(cmd.Context(), event)
			if err != nil {
				return fmt.Errorf("fetch recordings: %w", err)
			}
			selected, err := selectRecordings(recordings, selectOptions{
				Language: language.Normalize(lang),
				MimeType: mime,
				Best:     !audio,
				Audio:    audio,
			})
			if err != nil {
				return err
			}
			recording := selected[0]

			target := output
			if target == "" {
				if recording.Filename == "" {
					return errors.New("recording has no filename; pass --output")
				}
				target = filepath.Join(cfg.Downloads.Dir, recording.Filename)
			}
			if !cfg.Downloads.Overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (set downloads.overwrite to replace)", target)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("check target: %w", err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create download directory: %w", err)
			}

			body, size, err := client.DownloadRecording(cmd.Context(), recording)
			if err != nil {
				return err
			}
			defer body.Close()

			file, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}

			var dst io.Writer = file
			if stdoutIsTerminal() {
				bar := progressbar.DefaultBytes(size, filepath.Base(target))
				dst = io.MultiWriter(file, bar)
			}
			if _, err := io.Copy(dst, body); err != nil {
				file.Close()
				os.Remove(target)
				return fmt.Errorf("download: %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close %s: %w", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "", "Recording language code (e.g. eng, deu, eng-deu)")
	cmd.Flags().StringVar(&mime, "mime", "", "Recording MIME type (default video/mp4)")
	cmd.Flags().BoolVar(&audio, "audio", false, "Download the preferred audio recording instead of video")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target file path (default downloads dir + API filename)")
	return cmd
}
