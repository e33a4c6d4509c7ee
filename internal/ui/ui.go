// Package ui renders matched configuration records and gates destructive
// runs behind an interactive confirmation prompt.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/adsweep/internal/platform/discovery"
)

// ConfirmToken is the word the operator must type, case-insensitively, for
// a deletion to proceed.
const ConfirmToken = "cleanup"

// RenderRecords formats the matched records as a styled listing.
func RenderRecords(records []discovery.Record) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Matched server configurations (%d)", len(records))))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-24s %-28s %s", "HOST", "AGENT ID", "CONFIGURATION ID")))
	b.WriteString("\n")

	for _, r := range records {
		host := r.HostName()
		if host == "" {
			host = dimStyle.Render("<unknown>")
		}
		b.WriteString(fmt.Sprintf("  %-24s %-28s %s\n", host, r.AgentID, r.ConfigurationID))
	}

	return b.String()
}

// Confirmer asks the operator to approve a deletion. Interactive selects
// the huh prompt; otherwise one line is read from In.
type Confirmer struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
}

// NewConfirmer builds a confirmer on stdin/stdout, interactive when stdin
// is a terminal.
func NewConfirmer() *Confirmer {
	return &Confirmer{
		In:  os.Stdin,
		Out: os.Stdout,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// Confirm renders the records and reads the operator's answer. It returns
// true only when the answer equals ConfirmToken, ignoring case and
// surrounding whitespace. An aborted prompt counts as a decline, not an
// error.
func (c *Confirmer) Confirm(records []discovery.Record) (bool, error) {
	fmt.Fprintln(c.Out, RenderRecords(records))
	fmt.Fprintln(c.Out, warnStyle.Render(fmt.Sprintf(
		"This will delete %d agents and their configuration records.", len(records))))

	answer, err := c.read(len(records))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), ConfirmToken), nil
}

func (c *Confirmer) read(count int) (string, error) {
	prompt := fmt.Sprintf("Do you want to cleanup these %d configurations? (Type %q)", count, ConfirmToken)

	if c.Interactive {
		var answer string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(prompt).
				Value(&answer),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", nil
			}
			return "", err
		}
		return answer, nil
	}

	fmt.Fprintf(c.Out, "%s: ", prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
