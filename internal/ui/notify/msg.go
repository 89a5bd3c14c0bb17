package notify

import tea "github.com/charmbracelet/bubbletea"

// NotifyMsg asks the program to show a toast
type NotifyMsg struct {
	Variant Variant
	Message string
}

// NotifyCmd creates a tea.Cmd that produces a NotifyMsg
func NotifyCmd(variant Variant, message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Variant: variant, Message: message}
	}
}
