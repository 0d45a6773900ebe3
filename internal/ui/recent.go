package ui

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/recetario/internal/db"
	"github.com/javiermolinar/recetario/internal/logging"
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// now is replaced in tests.
var now = time.Now

func (a *App) recentCmd() *cobra.Command {
	var (
		limit        int
		clearHistory bool
		output       string
	)

	cmd := &cobra.Command{
		Use:     "recent",
		Aliases: []string{"history"},
		Short:   "List recently opened recipes",
		Example: `  recetario recent
  recetario recent --limit 5
  recetario recent --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutput(output, OutputText, OutputJSON, OutputYAML)
			if err != nil {
				return err
			}
			if limit < 1 {
				return fmt.Errorf("invalid limit %d: must be at least 1", limit)
			}

			store, err := a.historyStore()
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("history is disabled (storage.history = false)")
			}
			ctx := a.commandContext(cmd.Context(), "recent")

			if clearHistory {
				n, err := store.ClearViews(ctx)
				if err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
				fmt.Fprintf(a.out, "Cleared %s.\n", humanize.Comma(n)+" "+plural(n, "entry", "entries"))
				return nil
			}

			views, err := store.RecentViews(ctx, limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			switch format {
			case OutputJSON:
				return writeJSON(a.out, views)
			case OutputYAML:
				return writeYAML(a.out, views)
			}

			if len(views) == 0 {
				fmt.Fprintln(a.out, "No recipes viewed yet.")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCUISINE\tVIEWED")
			for _, row := range view.RecentRows(views, now()) {
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", db.DefaultRecentLimit, "Number of recipes to show")
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "Delete the whole history")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

// recordView adds r to the history. Failures are logged and never fail the command.
func (a *App) recordView(cmd *cobra.Command, r recipe.Summary) {
	log := logging.FromContext(a.commandContext(cmd.Context(), "history"))
	store, err := a.historyStore()
	if err != nil {
		log.Error(err, "history unavailable")
		return
	}
	if store == nil {
		return
	}
	if err := store.RecordView(cmd.Context(), r, now()); err != nil {
		log.Error(err, "recording view", "recipe", strconv.FormatInt(r.ID, 10))
	}
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
