package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConferencesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "conferences",
		Short: "List all conferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			conferences, err := client.Conferences(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch conferences: %w", err)
			}
			if jsonOut {
				return writeJSON(cmd, conferences)
			}
			rows := make([][]string, 0, len(conferences))
			for _, conference := range conferences {
				rows = append(rows, []string{
					conference.Acronym,
					truncate(conference.Title, 60),
					conference.EventLastReleasedAt,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Acronym", "Title", "Last Release"},
				rows,
				nil,
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d conferences\n", len(conferences))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	return cmd
}

func newConferenceCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "conference <acronym>",
		Short: "Show details for a conference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			conference, err := client.ConferenceByAcronym(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			// The list payload omits events; refetch for the full record.
			full, err := client.Conference(cmd.Context(), conference.Acronym)
			if err != nil {
				return fmt.Errorf("fetch conference %s: %w", conference.Acronym, err)
			}
			if jsonOut {
				return writeJSON(cmd, full)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:       %s\n", full.Title)
			fmt.Fprintf(out, "Acronym:     %s\n", full.Acronym)
			fmt.Fprintf(out, "Slug:        %s\n", full.Slug)
			fmt.Fprintf(out, "Events:      %d\n", len(full.Events))
			fmt.Fprintf(out, "Recordings:  %s\n", full.RecordingsURL)
			fmt.Fprintf(out, "Logo:        %s\n", full.LogoURL)
			fmt.Fprintf(out, "Images:      %s\n", full.ImagesURL)
			fmt.Fprintf(out, "Schedule:    %s\n", full.ScheduleURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of text")
	return cmd
}
