package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubResponder struct {
	reply string
	calls []string
}

func (s *stubResponder) Respond(_ context.Context, utterance string) string {
	s.calls = append(s.calls, utterance)
	return s.reply
}

func typeAndEnter(m Model, text string) (Model, tea.Cmd) {
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestEnterSendsUtteranceToAdvisor(t *testing.T) {
	stub := &stubResponder{reply: "Osaka Nail Studio 1 looks great."}
	m := New(stub)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	m, _ = typeAndEnter(m, "nail salons in Osaka")

	if len(stub.calls) != 1 || stub.calls[0] != "nail salons in Osaka" {
		t.Fatalf("advisor calls = %v", stub.calls)
	}
	transcript := strings.Join(m.transcript, "\n")
	if !strings.Contains(transcript, "nail salons in Osaka") || !strings.Contains(transcript, stub.reply) {
		t.Errorf("transcript missing exchange:\n%s", transcript)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after send: %q", m.input.Value())
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	stub := &stubResponder{reply: "hi"}
	m := New(stub)

	m, _ = typeAndEnter(m, "   ")
	if len(stub.calls) != 0 {
		t.Errorf("advisor called for empty input: %v", stub.calls)
	}
}

func TestQuitCommand(t *testing.T) {
	stub := &stubResponder{}
	m := New(stub)

	for _, input := range []string{"/quit", "quit", "QUIT"} {
		_, cmd := typeAndEnter(m, input)
		if cmd == nil {
			t.Errorf("input %q did not quit", input)
		}
	}
	if len(stub.calls) != 0 {
		t.Errorf("quit commands reached the advisor: %v", stub.calls)
	}
}
