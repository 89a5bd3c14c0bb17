// Package toast renders transient notifications on top of the dashboard.
// It owns the toast surface, the auto-hide timers, stacking and dismissal, and
// follows whatever notify.Policy it was built with.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/ui/notify"
)

// Toast is one visible notification
type Toast struct {
	ID        int
	Variant   notify.Variant
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time // zero when the policy never hides toasts
}

// ExpireMsg is delivered when a toast's auto-hide timer fires
type ExpireMsg struct {
	ID int
}

// Stack holds the visible toasts
type Stack struct {
	policy notify.Policy
	toasts []Toast // oldest first
	nextID int
	now    func() time.Time
	styles styles
}

// NewStack creates an empty stack that follows policy
func NewStack(policy notify.Policy) *Stack {
	return &Stack{
		policy: policy,
		now:    time.Now,
		styles: newStyles(policy.Density),
	}
}

// Policy returns the policy the stack was built with
func (s *Stack) Policy() notify.Policy {
	return s.policy
}

// Push shows a toast and returns the command that will hide it.
// It returns nil without showing anything when duplicates are suppressed and
// a toast with the same message is already visible. When the stack is full
// the oldest toast makes room. A nil variant is shown as info.
func (s *Stack) Push(variant notify.Variant, message string) tea.Cmd {
	if variant == nil {
		variant = notify.Info
	}
	if s.policy.PreventDuplicate && s.showing(message) {
		return nil
	}

	if s.policy.MaxConcurrent > 0 {
		for len(s.toasts) >= s.policy.MaxConcurrent {
			s.toasts = s.toasts[1:]
		}
	}

	s.nextID++
	now := s.now()
	t := Toast{
		ID:        s.nextID,
		Variant:   variant,
		Message:   message,
		CreatedAt: now,
	}
	if s.policy.AutoHide > 0 {
		t.ExpiresAt = now.Add(s.policy.AutoHide)
	}
	s.toasts = append(s.toasts, t)

	return s.expireAfter(t.ID)
}

// Update handles toast requests and expiry timers
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notify.NotifyMsg:
		return s.Push(msg.Variant, msg.Message)
	case ExpireMsg:
		s.Dismiss(msg.ID)
	}
	return nil
}

// Dismiss hides the toast with the given id, reporting whether it was visible
func (s *Stack) Dismiss(id int) bool {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll hides every toast
func (s *Stack) DismissAll() {
	s.toasts = nil
}

// Toasts returns a copy of the visible toasts, oldest first
func (s *Stack) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of visible toasts
func (s *Stack) Len() int {
	return len(s.toasts)
}

func (s *Stack) showing(message string) bool {
	for _, t := range s.toasts {
		if t.Message == message {
			return true
		}
	}
	return false
}

func (s *Stack) expireAfter(id int) tea.Cmd {
	if s.policy.AutoHide <= 0 {
		return nil
	}
	return tea.Tick(s.policy.AutoHide, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}
