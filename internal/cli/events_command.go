package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"quaver.click/internal/journal"
)

func newEventsCommand() *cobra.Command {
	var (
		since   string
		until   string
		kind    string
		session string
		subject string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List journaled engine notifications",
		Long: `List journaled engine notifications, newest first.

Examples:
  quaver events                            # Most recent events
  quaver events --since "2 hours ago"      # Natural language times
  quaver events --kind resource_not_found  # Only missing resources
  quaver events --session <id>             # One load run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			db := cli.openJournal()
			if db == nil {
				return fmt.Errorf("the journal is not enabled or its database is not available")
			}

			filter := journal.QueryFilter{
				Kind:      journal.Kind(kind),
				SessionID: session,
				Subject:   subject,
				Limit:     limit,
			}
			now := time.Now()
			if since != "" {
				t, err := journal.ParseSince(since, now)
				if err != nil {
					return err
				}
				filter.Since = &t
			}
			if until != "" {
				t, err := journal.ParseSince(until, now)
				if err != nil {
					return err
				}
				filter.Until = &t
			}
			if kind != "" && !isKnownKind(filter.Kind) {
				return fmt.Errorf("unknown event kind %q", kind)
			}

			events, err := journal.Query(db, filter)
			if err != nil {
				return err
			}

			t := cli.newTable(cmd.OutOrStdout(), "TIME", "AGE", "KIND", "SUBJECT", "DETAIL", "SESSION")
			for _, e := range events {
				t.row(e.Time.Format(time.RFC3339),
					humanize.Time(e.Time),
					string(e.Kind),
					e.Subject,
					string(e.Detail),
					e.SessionID)
			}
			return t.flush()
		},
	}

	kinds := make([]string, 0, len(journal.Kinds()))
	for _, k := range journal.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd.Flags().StringVar(&since, "since", "", `Only events at or after this time ("2 hours ago", RFC 3339)`)
	cmd.Flags().StringVar(&until, "until", "", "Only events before this time")
	cmd.Flags().StringVar(&kind, "kind", "", "Event kind ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().StringVar(&session, "session", "", "Only events from this session")
	cmd.Flags().StringVar(&subject, "subject", "", "Only events about this device, source or resource")
	cmd.Flags().IntVar(&limit, "limit", journal.DefaultLimit, "Maximum number of events to show")
	return cmd
}

func isKnownKind(k journal.Kind) bool {
	for _, known := range journal.Kinds() {
		if k == known {
			return true
		}
	}
	return false
}
