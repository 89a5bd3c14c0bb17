package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/noborus/ov/oviewer"
)

// pagerClosedMsg is sent when the pager exits
type pagerClosedMsg struct {
	title string
	err   error
}

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs.
type pagerCommand struct {
	title   string
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return errors.Wrapf(err, "open pager for %s", c.title)
	}

	// Don't print the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openPager returns a command that hands the terminal to the pager
func openPager(title, content string) tea.Cmd {
	return tea.Exec(&pagerCommand{title: title, content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{title: title, err: err}
	})
}
