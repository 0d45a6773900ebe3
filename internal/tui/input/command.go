// Package input parses the slash commands typed into the search line.
package input

import "strings"

// Command describes a slash command suggestion entry.
type Command struct {
	Name        string
	Args        string
	Description string
}

// Invocation is a parsed slash command.
type Invocation struct {
	Name string
	Args []string
}

// Arg returns the i-th argument or "".
func (inv Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// IsCommand reports whether the input is a slash command rather than a search term.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// Parse splits a slash command into its lowercased name and arguments.
func Parse(input string) (Invocation, bool) {
	if !IsCommand(input) {
		return Invocation{}, false
	}
	fields := strings.Fields(input)
	if len(fields) == 0 || fields[0] == "/" {
		return Invocation{}, false
	}
	return Invocation{Name: strings.ToLower(fields[0]), Args: fields[1:]}, true
}

// MatchingCommands returns commands that match the current input prefix.
func MatchingCommands(input string, commands []Command) []Command {
	if !IsCommand(input) {
		return nil
	}
	if strings.Contains(strings.TrimSpace(input), " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Autocomplete returns the first matching command and whether it exists.
func Autocomplete(input string, commands []Command) (string, bool) {
	matches := MatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// Hint renders the usage of the matching commands on one line.
func Hint(input string, commands []Command) string {
	matches := MatchingCommands(input, commands)
	if len(matches) == 0 {
		return ""
	}
	parts := make([]string, 0, len(matches))
	for _, cmd := range matches {
		usage := cmd.Name
		if cmd.Args != "" {
			usage += " " + cmd.Args
		}
		parts = append(parts, usage+": "+cmd.Description)
	}
	return strings.Join(parts, " | ")
}
