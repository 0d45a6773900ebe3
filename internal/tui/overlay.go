package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backdrop margin drawn around modal content.
const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// OverlayModel draws modal content on a backdrop box centered over the base view.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		active:  false,
		bgColor: lipgloss.Color(""),
	}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the overlay on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	contentW, contentH := o.contentSize(contentLines)
	if contentW == 0 || contentH == 0 {
		return base
	}

	boxW := min(contentW+2*overlayMarginX, width)
	boxH := min(contentH+2*overlayMarginY, height)

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	baseLines := o.normalizeBase(base, width, height)
	boxLines := o.applyContent(o.backdropLines(boxW, boxH), contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) bgSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func (o OverlayModel) backdropLines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	line := o.bgSeq() + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

// applyContent centers content inside the backdrop lines, cutting what does
// not fit.
func (o OverlayModel) applyContent(lines, content []string, width, height int) []string {
	if len(lines) == 0 || len(content) == 0 {
		return lines
	}

	contentW, contentH := o.contentSize(content)
	contentW = min(contentW, width)
	contentH = min(contentH, height)

	top := max((height-contentH)/2, 0)
	left := max((width-contentW)/2, 0)
	rightPad := max(width-left-contentW, 0)

	bgSeq := o.bgSeq()
	for i := 0; i < contentH; i++ {
		idx := top + i
		if idx >= len(lines) {
			break
		}
		line := content[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		if lineWidth < contentW {
			line += strings.Repeat(" ", contentW-lineWidth)
		}
		line = o.applyBackdropResets(line, bgSeq)
		lines[idx] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

func (o OverlayModel) applyBackdropResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
