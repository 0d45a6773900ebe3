package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/recetario/internal/api"
	"github.com/javiermolinar/recetario/internal/config"
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// listOutput is the structured form of one listed page.
type listOutput struct {
	Search     string            `json:"search,omitempty" yaml:"search,omitempty"`
	Records    []recipe.Summary  `json:"data" yaml:"data"`
	Pagination recipe.Pagination `json:"pagination" yaml:"pagination"`
}

func (a *App) listCmd() *cobra.Command {
	var (
		page    int
		perPage int
		details bool
		search  string
		output  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of recipes",
		Long: `Fetch one page of recipes and print it.

The search term filters the fetched page locally by title, description
and cuisine, the same way the interactive browser does.`,
		Example: `  recetario list
  recetario list --page 3 --per-page 20
  recetario list --details --search pasta
  recetario list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutput(output, OutputText, OutputJSON, OutputYAML)
			if err != nil {
				return err
			}
			if noColor {
				DisableColor()
			}

			if !cmd.Flags().Changed("per-page") {
				perPage = a.config.Browse.PerPage
			}
			if !cmd.Flags().Changed("details") {
				details = a.config.Browse.IncludeDetails
			}
			if page < 1 {
				return fmt.Errorf("invalid page %d: must be at least 1", page)
			}
			if perPage < 1 || perPage > config.MaxPageSize {
				return fmt.Errorf("invalid per-page %d: must be between 1 and %d", perPage, config.MaxPageSize)
			}

			fetcher, err := a.client()
			if err != nil {
				return err
			}
			ctx := a.commandContext(cmd.Context(), "list")
			p, err := fetcher.FetchPage(ctx, api.PageRequest{Page: page, PerPage: perPage, IncludeDetails: details})
			if err != nil {
				return fmt.Errorf("fetching page %d: %w", page, err)
			}

			records := recipe.Filter(p.Records, search)
			switch format {
			case OutputJSON:
				return writeJSON(a.out, listOutput{Search: search, Records: records, Pagination: p.Pagination})
			case OutputYAML:
				return writeYAML(a.out, listOutput{Search: search, Records: records, Pagination: p.Pagination})
			}

			a.printPage(p, records, page, search, details)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 10, "Recipes per page (defaults to browse.per_page)")
	cmd.Flags().BoolVar(&details, "details", false, "Include ingredients and instructions")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter the page by title, description or cuisine")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func (a *App) printPage(p *recipe.Page, records []recipe.Summary, page int, search string, details bool) {
	if p.Pagination.CurrentPage > 0 {
		page = p.Pagination.CurrentPage
	}
	pm := view.BuildPagination(p.Pagination, page)
	fmt.Fprintf(a.out, "=== %s ===\n", formatHeader(pm.Info))

	display := view.BuildDisplay(p.Records, records, details, search)
	if display.Empty != view.EmptyNone {
		fmt.Fprintf(a.out, "\n%s\n", display.Message)
		return
	}

	if !recipe.IsBlank(search) {
		fmt.Fprintf(a.out, "%s\n", formatMuted(fmt.Sprintf("%d of %d recipes match %q", len(records), len(p.Records), search)))
	}

	width := termWidth()
	for _, c := range display.Cards {
		fmt.Fprintln(a.out)
		printCard(a.out, c, width)
	}
}
