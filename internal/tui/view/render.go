// Package view provides view composition helpers for the TUI.
package view

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// Frame is one pre-rendered screen: the card browser plus an optional modal.
type Frame struct {
	Width  int
	Height int

	// MinWidth and MinHeight are the smallest window the browser fits in.
	MinWidth  int
	MinHeight int

	BaseContent  string
	ModalContent string
	ShowModal    bool
	Overlay      OverlayRenderer

	// EmptyPlaceholder is shown until the first window size is known.
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(f Frame) string {
	if f.Width == 0 || f.Height == 0 {
		if f.EmptyPlaceholder != "" {
			return f.EmptyPlaceholder
		}
		return "Loading..."
	}
	if f.TooSmall() {
		return "Terminal too small"
	}

	if f.ShowModal && f.Overlay != nil {
		return f.Overlay.Render(f.BaseContent, f.Width, f.Height, f.ModalContent)
	}
	return f.BaseContent
}

// TooSmall reports whether the window is below the minimum size.
func (f Frame) TooSmall() bool {
	return f.Width < f.MinWidth || f.Height < f.MinHeight
}
