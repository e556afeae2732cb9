package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"c3media/internal/ccc"
	"c3media/internal/language"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var (
		person    string
		tag       string
		title     string
		threshold int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "events <acronym>",
		Short: "List events of a conference, optionally filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			conference, err := client.Conference(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			events, err := client.ConferenceEvents(cmd.Context(), conference)
			if err != nil {
				return fmt.Errorf("fetch events: %w", err)
			}

			if person != "" {
				events = ccc.EventsByPerson(events, person)
			}
			if tag != "" {
				events = ccc.EventsByTag(events, tag)
			}
			if title != "" {
				limit := threshold
				if limit == 0 {
					limit = cfg.Search.FuzzyThreshold
				}
				events = ccc.EventsByTitle(events, title, limit)
			}

			if jsonOut {
				return writeJSON(cmd, events)
			}
			rows := make([][]string, 0, len(events))
			for _, event := range events {
				rows = append(rows, []string{
					truncate(event.Title, 55),
					truncate(joinOrDash(event.Persons), 35),
					language.DisplayName(event.OriginalLanguage),
					event.GUID,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Title", "Persons", "Language", "GUID"},
				rows,
				nil,
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d events\n", len(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "Only events featuring this speaker")
	cmd.Flags().StringVar(&tag, "tag", "", "Only events carrying this tag")
	cmd.Flags().StringVar(&title, "title", "", "Fuzzy title search")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Fuzzy similarity threshold 1-100 (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	return cmd
}

func newEventCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "event <guid>",
		Short: "Show details for an event",
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
			if jsonOut {
				return writeJSON(cmd, event)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:       %s\n", event.Title)
			if event.Subtitle != "" {
				fmt.Fprintf(out, "Subtitle:    %s\n", event.Subtitle)
			}
			fmt.Fprintf(out, "Conference:  %s\n", event.ConferenceTitle)
			fmt.Fprintf(out, "Persons:     %s\n", joinOrDash(event.Persons))
			fmt.Fprintf(out, "Tags:        %s\n", joinOrDash(event.Tags))
			fmt.Fprintf(out, "Language:    %s\n", language.DisplayName(event.OriginalLanguage))
			fmt.Fprintf(out, "Date:        %s\n", event.Date)
			fmt.Fprintf(out, "Duration:    %s\n", fmtDuration(event.Duration))
			fmt.Fprintf(out, "Views:       %d\n", event.ViewCount)
			fmt.Fprintf(out, "Link:        %s\n", event.FrontendLink)

			if len(event.Recordings) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable(
					[]string{"Format", "Language", "Quality", "Size"},
					recordingRows(event.Recordings),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of text")
	return cmd
}

func recordingRows(recordings []ccc.Recording) [][]string {
	rows := make([][]string, 0, len(recordings))
	for _, recording := range recordings {
		quality := "-"
		if recording.Width > 0 && recording.Height > 0 {
			quality = fmt.Sprintf("%dx%d", recording.Width, recording.Height)
		}
		rows = append(rows, []string{
			recording.MimeType,
			language.DisplayName(recording.Language),
			quality,
			fmtSize(recording.Size),
		})
	}
	return rows
}
