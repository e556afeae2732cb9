package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"c3media/internal/ccc"
	"c3media/internal/language"
)

// selectOptions narrows an event's recordings down to the requested subset
// or single pick.
type selectOptions struct {
	Language string
	MimeType string
	Best     bool
	Audio    bool
}

func selectRecordings(recordings []ccc.Recording, opts selectOptions) ([]ccc.Recording, error) {
	if opts.Best && opts.Audio {
		return nil, errors.New("--best and --audio are mutually exclusive")
	}
	if opts.Audio {
		recording, ok := ccc.AudioRecording(recordings, opts.Language)
		if !ok {
			return nil, errors.New("no matching audio recording")
		}
		return []ccc.Recording{recording}, nil
	}
	if opts.Language != "" {
		recordings = ccc.RecordingsByLanguage(recordings, opts.Language)
	}
	if opts.Best {
		recording, ok := ccc.BestRecording(recordings, opts.MimeType)
		if !ok {
			return nil, errors.New("no matching recording")
		}
		return []ccc.Recording{recording}, nil
	}
	if opts.MimeType != "" {
		recordings = ccc.RecordingsByFormat(recordings, opts.MimeType)
	}
	return recordings, nil
}

func newRecordingsCommand(ctx *commandContext) *cobra.Command {
	var (
		lang    string
		mime    string
		best    bool
		audio   bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "recordings <guid>",
		Short: "List recordings of an event",
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
				Best:     best,
				Audio:    audio,
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, selected)
			}
			rows := make([][]string, 0, len(selected))
			for _, recording := range selected {
				quality := "-"
				if recording.Width > 0 && recording.Height > 0 {
					quality = fmt.Sprintf("%dx%d", recording.Width, recording.Height)
				}
				rows = append(rows, []string{
					recording.MimeType,
					language.DisplayName(recording.Language),
					quality,
					fmtSize(recording.Size),
					fmtDuration(recording.Length),
					recording.RecordingURL,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Format", "Language", "Quality", "Size", "Length", "URL"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "", "Only recordings in this language code (e.g. eng, deu, eng-deu)")
	cmd.Flags().StringVar(&mime, "mime", "", "Only recordings with this MIME type (e.g. video/mp4)")
	cmd.Flags().BoolVar(&best, "best", false, "Only the highest quality recording")
	cmd.Flags().BoolVar(&audio, "audio", false, "Only the preferred audio recording")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	return cmd
}
