package main

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"c3media/internal/ccc"
	"c3media/internal/language"
)

func newSubtitlesCommand(ctx *commandContext) *cobra.Command {
	var (
		lang    string
		fetch   bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "subtitles <guid>",
		Short: "Probe subtitle files for an event's best recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fetch && lang == "" {
				return errors.New("--fetch requires --language")
			}
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
			recording, ok := ccc.BestRecording(recordings, "")
			if !ok {
				return errors.New("event has no video recording to probe subtitles for")
			}
			subtitles, err := client.Subtitles(cmd.Context(), recording)
			if err != nil {
				return fmt.Errorf("probe subtitles: %w", err)
			}
			if lang != "" {
				filtered := subtitles[:0]
				for _, subtitle := range subtitles {
					if subtitle.Language == language.Normalize(lang) {
						filtered = append(filtered, subtitle)
					}
				}
				subtitles = filtered
			}

			if fetch {
				return fetchSubtitle(cmd, ctx, client, guid, subtitles)
			}
			if jsonOut {
				return writeJSON(cmd, subtitles)
			}
			rows := make([][]string, 0, len(subtitles))
			for _, subtitle := range subtitles {
				rows = append(rows, []string{
					language.DisplayName(subtitle.Language),
					subtitle.Format,
					subtitle.URL,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Language", "Format", "URL"},
				rows,
				nil,
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d subtitle files\n", len(subtitles))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "", "Only subtitles in this language code")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Print the content of the first matching subtitle (requires --language)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	return cmd
}

// fetchSubtitle prints the first matching subtitle's content, going through
// the on-disk cache when one is configured.
func fetchSubtitle(cmd *cobra.Command, ctx *commandContext, client *ccc.Client, guid string, subtitles []ccc.Subtitle) error {
	if len(subtitles) == 0 {
		return errors.New("no matching subtitle found")
	}
	subtitle := subtitles[0]

	if cache := ctx.subtitleCache(); cache != nil {
		if hit, ok, err := cache.Load(guid, subtitle.Language, subtitle.Format); err != nil {
			return fmt.Errorf("read subtitle cache: %w", err)
		} else if ok {
			_, err := cmd.OutOrStdout().Write(hit.Content)
			return err
		}
	}

	content, err := client.SubtitleContent(cmd.Context(), subtitle)
	if err != nil {
		return fmt.Errorf("fetch subtitle %s: %w", path.Base(subtitle.URL), err)
	}
	if cache := ctx.subtitleCache(); cache != nil {
		entry := ccc.CacheEntry{
			EventGUID: guid,
			Language:  subtitle.Language,
			Format:    subtitle.Format,
			URL:       subtitle.URL,
		}
		if _, err := cache.Store(entry, []byte(content)); err != nil {
			return fmt.Errorf("store subtitle cache: %w", err)
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
