package input

import "testing"

var testCommands = []Command{
	{Name: "/page", Args: "N", Description: "Go to page"},
	{Name: "/size", Args: "N", Description: "Set page size"},
	{Name: "/details", Args: "on|off", Description: "Toggle details"},
}

func TestMatchingCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "page", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "full", input: "/page", want: 1},
		{name: "prefix", input: "/p", want: 1},
		{name: "all", input: "/", want: 3},
		{name: "case", input: "/SI", want: 1},
		{name: "with_args", input: "/page 2", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingCommands(tt.input, testCommands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAutocomplete(t *testing.T) {
	value, ok := Autocomplete("/d", testCommands)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/details " {
		t.Fatalf("value = %q, want %q", value, "/details ")
	}

	if _, ok := Autocomplete("/zzz", testCommands); ok {
		t.Fatal("expected no autocomplete")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		name  string
		arg0  string
	}{
		{input: "/page 3", ok: true, name: "/page", arg0: "3"},
		{input: "  /SIZE   20 ", ok: true, name: "/size", arg0: "20"},
		{input: "/recent", ok: true, name: "/recent"},
		{input: "/", ok: false},
		{input: "pasta", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			inv, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if inv.Name != tt.name || inv.Arg(0) != tt.arg0 {
				t.Fatalf("Parse(%q) = %+v", tt.input, inv)
			}
		})
	}
}

func TestHint(t *testing.T) {
	if got := Hint("/pa", testCommands); got != "/page N: Go to page" {
		t.Fatalf("Hint() = %q", got)
	}
	if got := Hint("pasta", testCommands); got != "" {
		t.Fatalf("Hint() = %q, want empty", got)
	}
}
