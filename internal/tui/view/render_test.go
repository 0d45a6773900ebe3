package view

import "testing"

type stubOverlay struct{ calls int }

func (s *stubOverlay) Render(base string, _, _ int, content string) string {
	s.calls++
	return base + "|" + content
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			name:  "no size yet",
			frame: Frame{EmptyPlaceholder: "Loading recipes..."},
			want:  "Loading recipes...",
		},
		{
			name:  "no size, no placeholder",
			frame: Frame{},
			want:  "Loading...",
		},
		{
			name:  "too small",
			frame: Frame{Width: 10, Height: 20, MinWidth: 24, MinHeight: 11, BaseContent: "cards"},
			want:  "Terminal too small",
		},
		{
			name:  "base only",
			frame: Frame{Width: 80, Height: 24, MinWidth: 24, MinHeight: 11, BaseContent: "cards", ModalContent: "detail"},
			want:  "cards",
		},
		{
			name:  "modal",
			frame: Frame{Width: 80, Height: 24, BaseContent: "cards", ModalContent: "detail", ShowModal: true, Overlay: &stubOverlay{}},
			want:  "cards|detail",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.frame); got != tt.want {
				t.Fatalf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
