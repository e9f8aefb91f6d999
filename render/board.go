package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/randalmurphal/sumkit/summarize"
	"github.com/randalmurphal/sumkit/truncate"
)

// DefaultBoardWidth is the triage board's rendering width when the
// caller does not set one.
const DefaultBoardWidth = 120

// Board renders side-by-side triage comparisons of multi-profile
// summaries, one table per layer so the same content can be eyeballed
// across devices.
type Board struct {
	Width int

	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	nameStyle   lipgloss.Style
	dimStyle    lipgloss.Style
	ruleStyle   lipgloss.Style
}

// NewBoard returns a Board with the default width and styling.
func NewBoard() *Board {
	return &Board{
		Width:       DefaultBoardWidth,
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		nameStyle:   lipgloss.NewStyle().Bold(true),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ruleStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const (
	profileColWidth = 10
	deviceColWidth  = 14
	screenColWidth  = 11
	lengthColWidth  = 7
)

// Render draws the full triage board: a centered title followed by one
// comparison table per layer, in the result's layer order.
func (b *Board) Render(res *summarize.Result) string {
	width := b.Width
	if width <= 0 {
		width = DefaultBoardWidth
	}

	var sections []string
	title := b.titleStyle.Render("MULTI-PROFILE TRIAGE BOARD")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, title), "")

	for _, layerName := range layerOrder(res) {
		sections = append(sections, b.renderLayer(res, layerName, width), "")
	}

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, sections...), "\n")
}

// ProfileInfo draws one row per profile with its geometry and the
// character budget it produces.
func (b *Board) ProfileInfo(res *summarize.Result) string {
	rule := b.ruleStyle.Render(strings.Repeat("─", 70))

	rows := []string{
		b.headerStyle.Render("Device Profiles"),
		rule,
		b.headerStyle.Render(joinColumns(
			pad("Profile", profileColWidth),
			pad("Resolution", screenColWidth),
			pad("Font", 6),
			pad("Columns", 8),
			pad("Buffer", 7),
			"Budget",
		)),
	}
	for _, pr := range res.Profiles {
		rows = append(rows, joinColumns(
			b.nameStyle.Render(pad(strings.ToUpper(pr.Profile.Name), profileColWidth)),
			pad(fmt.Sprintf("%dx%d", pr.Profile.WidthPx, pr.Profile.HeightPx), screenColWidth),
			pad(fmt.Sprintf("%dpx", pr.Profile.FontSizePx), 6),
			pad(fmt.Sprintf("%d", pr.Profile.RulerColumns), 8),
			pad(fmt.Sprintf("%.0f%%", pr.Profile.Buffer*100), 7),
			fmt.Sprintf("%d chars", pr.Budget.TargetChars),
		))
	}
	rows = append(rows, rule)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *Board) renderLayer(res *summarize.Result, layerName string, width int) string {
	summaryWidth := width - profileColWidth - deviceColWidth - screenColWidth - lengthColWidth - 5
	if summaryWidth < 20 {
		summaryWidth = 20
	}

	rule := b.ruleStyle.Render(strings.Repeat("─", width))

	rows := []string{
		b.headerStyle.Render(titleCase(layerName) + " Layer"),
		rule,
		b.headerStyle.Render(joinColumns(
			pad("Profile", profileColWidth),
			pad("Device", deviceColWidth),
			pad("Screen", screenColWidth),
			pad("Summary", summaryWidth),
			"Length",
		)),
	}

	for _, pr := range res.Profiles {
		text, ok := res.Get(pr.Profile.Name, layerName)
		if !ok {
			text = "N/A"
		}
		length := utf8.RuneCountInString(text)
		excerpt := truncate.ToLength(strings.ReplaceAll(text, "\n", " "), summaryWidth)

		rows = append(rows, joinColumns(
			b.nameStyle.Render(pad(strings.ToUpper(pr.Profile.Name), profileColWidth)),
			b.dimStyle.Render(pad(deviceType(pr.Profile.Name), deviceColWidth)),
			b.dimStyle.Render(pad(fmt.Sprintf("%dx%d", pr.Profile.WidthPx, pr.Profile.HeightPx), screenColWidth)),
			pad(excerpt, summaryWidth),
			lengthStyle(length).Render(fmt.Sprintf("%d", length)),
		))
	}
	rows = append(rows, rule)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// layerOrder collects layer names in result order, first profile wins.
func layerOrder(res *summarize.Result) []string {
	var order []string
	seen := map[string]bool{}
	for _, pr := range res.Profiles {
		for _, lr := range pr.Layers {
			if !seen[lr.Layer] {
				seen[lr.Layer] = true
				order = append(order, lr.Layer)
			}
		}
	}
	return order
}

// deviceType maps builtin profile names to human-readable labels.
func deviceType(name string) string {
	switch strings.ToLower(name) {
	case "phone":
		return "Mobile"
	case "laptop":
		return "Laptop"
	case "slides":
		return "Presentation"
	case "tweet":
		return "Social"
	}
	return "Display"
}

// lengthStyle color-codes a summary length: green for terse, red for
// budget-straining.
func lengthStyle(length int) lipgloss.Style {
	switch {
	case length < 50:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case length < 150:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case length < 300:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
}

func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func joinColumns(cols ...string) string {
	return strings.Join(cols, " ")
}
