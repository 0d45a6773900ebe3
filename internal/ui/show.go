package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var (
		output  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one recipe in full",
		Long: `Fetch a recipe from the detail endpoint and print it with its
ingredients, instructions, and nutrition.

Opened recipes are added to the history when storage.history is on.`,
		Example: `  recetario show 42
  recetario show 42 --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 1 {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			format, err := parseOutput(output, OutputMarkdown, OutputJSON, OutputYAML)
			if err != nil {
				return err
			}

			fetcher, err := a.client()
			if err != nil {
				return err
			}
			ctx := a.commandContext(cmd.Context(), "show")
			d, err := fetcher.FetchDetail(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching recipe %d: %w", id, err)
			}

			a.recordView(cmd, d.Summary)

			switch format {
			case OutputJSON:
				return writeJSON(a.out, d.Summary)
			case OutputYAML:
				return writeYAML(a.out, d.Summary)
			}

			styled := !noColor && isTerminal()
			out, err := renderMarkdown(recipeMarkdown(d.Summary), min(termWidth(), 100), styled)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "markdown", "Output format: markdown, json, yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	return cmd
}
