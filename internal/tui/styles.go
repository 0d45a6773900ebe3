// Package tui provides the terminal user interface for recetario.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/recetario/internal/tui/theme"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// modalWidth is the outer width of the detail and history modals.
const modalWidth = 76

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	HeaderBarStyle   lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderMetaStyle  lipgloss.Style

	// Cards
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardTitleStyle    lipgloss.Style
	RatingStyle       lipgloss.Style
	TimeStyle         lipgloss.Style
	DescriptionStyle  lipgloss.Style
	CuisineBadgeStyle lipgloss.Style
	MetaStyle         lipgloss.Style
	MutedStyle        lipgloss.Style

	// Error banner and empty states
	ErrorBannerStyle lipgloss.Style
	EmptyStyle       lipgloss.Style
	EmptyTitleStyle  lipgloss.Style
	EmptyHintStyle   lipgloss.Style

	// Pagination
	PaginationBarStyle      lipgloss.Style
	PaginationButtonStyle   lipgloss.Style
	PaginationDisabledStyle lipgloss.Style
	PaginationInfoStyle     lipgloss.Style

	// Search line
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptTextStyle    lipgloss.Style
	PlaceholderStyle   lipgloss.Style
	CursorStyle        lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalLinkStyle         lipgloss.Style
	ModalRatingStyle       lipgloss.Style
	ModalTimeStyle         lipgloss.Style
	ModalSelectedStyle     lipgloss.Style
	ModalBorderStyle       lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Spinner
	SpinnerStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.HeaderBarStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderMetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Cards: rounded border, card background; the selected card swaps both
	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(palette.CardBg).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.CardSelectedStyle = s.CardStyle.
		BorderForeground(s.colorAccent).
		Background(palette.CardSelectedBg).
		Foreground(palette.TextOnSelected)

	s.CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg)

	s.RatingStyle = lipgloss.NewStyle().
		Foreground(palette.Rating).
		Bold(true)

	s.TimeStyle = lipgloss.NewStyle().
		Foreground(palette.Time)

	s.DescriptionStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.CuisineBadgeStyle = lipgloss.NewStyle().
		Background(palette.CuisineBg).
		Foreground(palette.TextOnCuisine).
		Padding(0, 1)

	s.MetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.ErrorBannerStyle = lipgloss.NewStyle().
		Background(palette.ErrorBg).
		Foreground(palette.TextOnError).
		Bold(true).
		Padding(0, 1)

	s.EmptyStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Align(lipgloss.Center)

	s.EmptyTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.EmptyHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PaginationBarStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.PaginationButtonStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.PaginationDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	s.PaginationInfoStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Bold(true)

	s.PromptTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnCuisine).
		Background(palette.CuisineBg).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalLinkStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(modalBg).
		Underline(true)

	s.ModalRatingStyle = lipgloss.NewStyle().
		Foreground(palette.Rating).
		Background(modalBg).
		Bold(true)

	s.ModalTimeStyle = lipgloss.NewStyle().
		Foreground(palette.Time).
		Background(modalBg)

	s.ModalSelectedStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight).
		Bold(true)

	s.ModalBorderStyle = lipgloss.NewStyle().
		Foreground(modal.Border).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg).
		Italic(true)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	return s
}

func (s *Styles) cardStyles() view.CardStyles {
	return view.CardStyles{
		Card:         s.CardStyle,
		CardSelected: s.CardSelectedStyle,
		Title:        s.CardTitleStyle,
		Rating:       s.RatingStyle,
		Time:         s.TimeStyle,
		Description:  s.DescriptionStyle,
		Badge:        s.CuisineBadgeStyle,
		Meta:         s.MetaStyle,
		Muted:        s.MutedStyle,
	}
}

func (s *Styles) bannerStyles() view.BannerStyles {
	return view.BannerStyles{
		Error:      s.ErrorBannerStyle,
		Empty:      s.EmptyStyle,
		EmptyTitle: s.EmptyTitleStyle,
		EmptyHint:  s.EmptyHintStyle,
	}
}

func (s *Styles) paginationStyles() view.PaginationStyles {
	return view.PaginationStyles{
		Bar:      s.PaginationBarStyle,
		Button:   s.PaginationButtonStyle,
		Disabled: s.PaginationDisabledStyle,
		Info:     s.PaginationInfoStyle,
	}
}

func (s *Styles) headerStyles() view.HeaderStyles {
	return view.HeaderStyles{
		Bar:   s.HeaderBarStyle,
		Title: s.HeaderTitleStyle,
		Meta:  s.HeaderMetaStyle,
	}
}

func (s *Styles) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         s.ModalBodyStyle,
		MetaStyle:         s.ModalMetaStyle,
		SectionTitleStyle: s.ModalSectionTitleStyle,
		TagStyle:          s.ModalTagStyle,
		LabelStyle:        s.ModalLabelStyle,
		HintStyle:         s.ModalHintStyle,
		LinkStyle:         s.ModalLinkStyle,
		RatingStyle:       s.ModalRatingStyle,
		TimeStyle:         s.ModalTimeStyle,
		SelectedStyle:     s.ModalSelectedStyle,
		BorderStyle:       s.ModalBorderStyle,
	}
}
