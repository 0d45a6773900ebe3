package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/recetario/internal/config"
	"github.com/javiermolinar/recetario/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initFile bool
		force    bool
		edit     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Print the effective configuration: defaults, then the config file,
then RECETARIO_* environment overrides.

--init writes the defaults to the config file. --edit walks through the
main settings and saves them.`,
		Example: `  recetario config
  recetario config --init
  recetario config --edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case initFile:
				return a.initConfig(force)
			case edit:
				return a.editConfig(cmd.InOrStdin())
			}
			return a.printConfig()
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a config file with default values")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file with --init")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	return cmd
}

func (a *App) initConfig(force bool) error {
	if _, err := os.Stat(a.configPath); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", a.configPath)
	}
	if err := config.Default().SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(a.out, "Created %s\n", a.configPath)
	return nil
}

func (a *App) printConfig() error {
	cfg := a.config
	fmt.Fprintf(a.out, "Config file: %s\n\n", a.configPath)
	fmt.Fprintln(a.out, "Current configuration:")
	fmt.Fprintln(a.out, "──────────────────────")
	fmt.Fprintln(a.out, "[api]")
	fmt.Fprintf(a.out, "  base_url         = %s\n", cfg.API.BaseURL)
	fmt.Fprintf(a.out, "  timeout          = %s\n", orNone(cfg.API.Timeout))
	fmt.Fprintln(a.out, "\n[browse]")
	fmt.Fprintf(a.out, "  per_page         = %d\n", cfg.Browse.PerPage)
	fmt.Fprintf(a.out, "  page_sizes       = %s\n", joinSizes(cfg.Browse.PageSizes))
	fmt.Fprintf(a.out, "  include_details  = %t\n", cfg.Browse.IncludeDetails)
	fmt.Fprintln(a.out, "\n[ui]")
	fmt.Fprintf(a.out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintln(a.out, "\n[storage]")
	fmt.Fprintf(a.out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(a.out, "  history          = %t\n", cfg.Storage.History)
	fmt.Fprintln(a.out, "\n[log]")
	fmt.Fprintf(a.out, "  level            = %s\n", cfg.Log.Level)
	return nil
}

func (a *App) editConfig(in io.Reader) error {
	if err := a.printConfig(); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	if !a.promptYesNo(reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg := *a.config
	cfg.API.BaseURL = a.promptValue(reader, "API base URL", cfg.API.BaseURL)
	cfg.API.Timeout = a.promptValue(reader, "API timeout (empty for none)", cfg.API.Timeout)
	cfg.Browse.PerPage = a.promptInt(reader, "Recipes per page", cfg.Browse.PerPage)
	cfg.Browse.IncludeDetails = a.promptBool(reader, "Include details", cfg.Browse.IncludeDetails)
	cfg.UI.Theme = a.promptTheme(reader, cfg.UI.Theme)
	cfg.Storage.History = a.promptBool(reader, "Record history", cfg.Storage.History)
	cfg.Storage.DBPath = a.promptValue(reader, "Database path", cfg.Storage.DBPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	*a.config = cfg

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func (a *App) promptYesNo(reader *bufio.Reader, question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func (a *App) promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(a.out, "  %s: ", label)
	} else {
		fmt.Fprintf(a.out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func (a *App) promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := a.promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(a.out, "  Invalid number %q.\n", value)
	}
}

func (a *App) promptBool(reader *bufio.Reader, label string, current bool) bool {
	for {
		value := a.promptValue(reader, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(a.out, "  Invalid value %q.\n", value)
	}
}

func (a *App) promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(a.promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(a.out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
