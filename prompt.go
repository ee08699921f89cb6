package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wavevault/state"
)

// Prompter renders an open dialog as a console interaction. Commands open
// a dialog with its payload, hand it to the prompter, then close it with
// the answer.
type Prompter interface {
	Confirm(dialogs *state.Dialogs, kind state.DialogKind) bool
}

type ConsolePrompter struct {
	in io.Reader
}

func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{in: os.Stdin}
}

func (p *ConsolePrompter) Confirm(dialogs *state.Dialogs, kind state.DialogKind) bool {
	if !dialogs.IsOpen(kind) {
		return false
	}

	payload, found := dialogs.Payload(kind)

	if !found {
		return false
	}

	fmt.Printf("%s [y/N]: ", questionFor(payload))

	line, err := bufio.NewReader(p.in).ReadString('\n')

	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func questionFor(payload state.DialogPayload) string {
	switch p := payload.(type) {
	case state.SharePayload:
		return fmt.Sprintf("Share \"%s\" with %s?", p.Item.Name, strings.Join(p.Recipients, ", "))

	case state.DeletePayload:
		return fmt.Sprintf("Delete \"%s\"? This cannot be undone.", p.Item.Name)

	case state.RemovePayload:
		return fmt.Sprintf("Remove \"%s\" from the project?", p.Item.Name)

	default:
		return "Continue?"
	}
}
