package llm

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct {
	resp  Response
	err   error
	calls int
}

func (s *stubClient) Complete(ctx context.Context, req Request) (Response, error) {
	s.calls++
	return s.resp, s.err
}

func TestFallbackClientUsesPrimary(t *testing.T) {
	primary := &stubClient{resp: Response{Text: "primary"}}
	fallback := &stubClient{resp: Response{Text: "fallback"}}
	client := NewFallbackClient(primary, fallback, nil)

	resp, err := client.Complete(context.Background(), Request{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Text != "primary" {
		t.Errorf("Text = %q, want primary", resp.Text)
	}
	if fallback.calls != 0 {
		t.Error("fallback must not be called when primary succeeds")
	}
}

func TestFallbackClientRetriesOnPrimaryFailure(t *testing.T) {
	primary := &stubClient{err: errors.New("quota exceeded")}
	fallback := &stubClient{resp: Response{Text: "fallback"}}
	client := NewFallbackClient(primary, fallback, nil)

	resp, err := client.Complete(context.Background(), Request{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Text != "fallback" {
		t.Errorf("Text = %q, want fallback", resp.Text)
	}
}

func TestFallbackClientNoFallbackConfigured(t *testing.T) {
	wantErr := errors.New("down")
	client := NewFallbackClient(&stubClient{err: wantErr}, nil, nil)

	_, err := client.Complete(context.Background(), Request{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want original primary error", err)
	}
}

func TestFallbackClientBothFail(t *testing.T) {
	fallbackErr := errors.New("also down")
	client := NewFallbackClient(
		&stubClient{err: errors.New("down")},
		&stubClient{err: fallbackErr},
		nil,
	)

	_, err := client.Complete(context.Background(), Request{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
	})
	if !errors.Is(err, fallbackErr) {
		t.Errorf("err = %v, want last-attempt error", err)
	}
}
