package toast

import (
	"github.com/charmbracelet/lipgloss"

	"waterdeck/internal/ui/notify"
)

// maxToastWidth caps a toast so long messages wrap instead of spanning the screen
const maxToastWidth = 48

type styles struct {
	box     lipgloss.Style
	message lipgloss.Style
	gap     int // blank lines between toasts
}

func newStyles(density notify.Density) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color("252"))
	s := styles{
		box:     box.Padding(0, 1),
		message: lipgloss.NewStyle().Bold(true),
		gap:     0,
	}
	if density == notify.DensityDefault {
		s.box = box.Padding(1, 2)
		s.gap = 1
	}
	return s
}

// Color resolves a palette token to a terminal color
func Color(token notify.ColorToken) lipgloss.Color {
	switch token {
	case notify.ColorSuccess:
		return lipgloss.Color("78") // green
	case notify.ColorWarning:
		return lipgloss.Color("214") // yellow
	case notify.ColorError:
		return lipgloss.Color("203") // red
	default:
		return lipgloss.Color("39") // blue
	}
}

// RenderToast draws a single toast
func (s *Stack) RenderToast(t Toast, width int) string {
	p := t.Variant.Presentation()
	color := Color(p.Color)

	icon := lipgloss.NewStyle().Foreground(color).Bold(true).Render(p.Icon.Glyph())

	boxWidth := maxToastWidth
	if width > 0 && width < boxWidth {
		boxWidth = width
	}
	// The icon and its space sit beside the text; border and padding are outside it
	frame := s.styles.box.GetHorizontalFrameSize()
	textWidth := boxWidth - frame - lipgloss.Width(icon) - 1
	if textWidth < 1 {
		textWidth = 1
	}
	text := s.styles.message.Width(textWidth).Render(t.Message)

	body := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", text)
	return s.styles.box.BorderForeground(color).Render(body)
}

// View renders the stack placed across a line of the given width.
// Toasts nearest the anchored edge are the newest.
func (s *Stack) View(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}

	ordered := make([]Toast, len(s.toasts))
	copy(ordered, s.toasts)
	if s.policy.Anchor.Vertical == notify.AnchorTop {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	pos := horizontalPosition(s.policy.Anchor.Horizontal)
	blocks := make([]string, 0, len(ordered)*2)
	for i, t := range ordered {
		if i > 0 {
			for g := 0; g < s.styles.gap; g++ {
				blocks = append(blocks, "")
			}
		}
		blocks = append(blocks, s.RenderToast(t, width))
	}
	stack := lipgloss.JoinVertical(pos, blocks...)

	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, pos, stack)
}

func horizontalPosition(h notify.Horizontal) lipgloss.Position {
	switch h {
	case notify.AnchorLeft:
		return lipgloss.Left
	case notify.AnchorCenter:
		return lipgloss.Center
	default:
		return lipgloss.Right
	}
}
