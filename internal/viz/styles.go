package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const panelWidth = 36

type styles struct {
	canvas lipgloss.Style
	panel  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	active lipgloss.Style
	hint   lipgloss.Style
	graph  lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Foreground(t.Canvas),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(panelWidth),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(14),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		active: lipgloss.NewStyle().Foreground(t.Active).Bold(true),
		hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		graph:  lipgloss.NewStyle().Foreground(t.Graph),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// GradientText colors each rune of text along a Lab blend from start to
// end. Colors that do not parse leave the text unstyled.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	c0, err := colorful.Hex(string(start))
	if err != nil {
		return text
	}
	c1, err := colorful.Hex(string(end))
	if err != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(c0.BlendLab(c1, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(r)))
	}
	return b.String()
}

// Separator is a muted rule with a diamond in the middle.
func Separator(width int, s lipgloss.Style) string {
	if width < 8 {
		return s.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return s.Render(left + " ◆ " + right)
}
