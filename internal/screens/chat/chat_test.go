package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	chatfeed "github.com/Tnecniv1/Calcul-Pixel/internal/chat"
)

// fakeChat implements backend.Chat with an in-memory history.
type fakeChat struct {
	history []chatfeed.Message
	handler func(chatfeed.Message)
	nextID  int
}

func (f *fakeChat) FetchMessages(_ context.Context, before *time.Time) ([]chatfeed.Message, error) {
	// Newest first, strictly older than the cursor.
	var out []chatfeed.Message
	for i := len(f.history) - 1; i >= 0; i-- {
		m := f.history[i]
		if before != nil && !m.CreatedAt.Before(*before) {
			continue
		}
		out = append(out, m)
		if len(out) == chatfeed.PageSize {
			break
		}
	}
	return out, nil
}

func (f *fakeChat) SendMessage(_ context.Context, content string) (chatfeed.Message, error) {
	f.nextID++
	m := chatfeed.Message{
		ID:         fmt.Sprintf("m-%d", f.nextID),
		SenderID:   1,
		SenderName: "Moi",
		Content:    content,
		CreatedAt:  time.Now(),
	}
	f.history = append(f.history, m)
	return m, nil
}

func (f *fakeChat) SubscribeMessages(handler func(chatfeed.Message)) (func(), error) {
	f.handler = handler
	return func() { f.handler = nil }, nil
}

func TestOptimisticEchoAndRealtimeConverge(t *testing.T) {
	f := &fakeChat{}
	s := New(f)

	s.Update(pageMsg{})

	// Send: the optimistic echo lands first.
	cmd := s.send("salut")
	sent := cmd().(sentMsg)
	s.Update(sent)

	if s.feed.Len() != 1 {
		t.Fatalf("feed len = %d after echo, want 1", s.feed.Len())
	}

	// The realtime copy of the same row must not duplicate.
	s.Update(pushMsg{Message: sent.Message})
	if s.feed.Len() != 1 {
		t.Fatalf("feed len = %d after realtime copy, want 1", s.feed.Len())
	}
}

func TestHistoryPagePopulatesFeed(t *testing.T) {
	f := &fakeChat{}
	base := time.Now()
	for i := 0; i < 3; i++ {
		f.history = append(f.history, chatfeed.Message{
			ID:        fmt.Sprintf("h-%d", i),
			Content:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	s := New(f)

	page, _ := f.FetchMessages(context.Background(), nil)
	s.Update(pageMsg{Messages: page})

	if s.feed.Len() != 3 {
		t.Fatalf("feed len = %d, want 3", s.feed.Len())
	}
	msgs := s.feed.Messages()
	if !msgs[0].CreatedAt.Before(msgs[2].CreatedAt) {
		t.Fatal("expected chronological order in feed")
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	f := &fakeChat{}
	s := New(f)

	s.Update(s.subscribe()())
	if f.handler == nil {
		t.Fatal("expected a realtime handler")
	}

	s.Close()
	if f.handler != nil {
		t.Fatal("expected handler removed after Close")
	}
}

func TestCloseBeforeSubscribeCompletesTearsDown(t *testing.T) {
	f := &fakeChat{}
	s := New(f)

	// The screen leaves the stack while the dial is still in flight.
	cmd := s.subscribe()
	s.Close()

	if msg := cmd(); msg != nil {
		t.Fatalf("late subscribe returned %T, want nil", msg)
	}
	if f.handler != nil {
		t.Fatal("expected the late subscription torn down")
	}
}

func TestLateSubscribedMsgAfterCloseUnsubscribes(t *testing.T) {
	s := New(&fakeChat{})
	s.Close()

	called := false
	s.Update(subscribedMsg{Unsubscribe: func() { called = true }})
	if !called {
		t.Fatal("expected unsubscribe called for a post-close subscription")
	}
	if s.unsubscribe != nil {
		t.Fatal("expected no retained unsubscribe after close")
	}
}

func TestCloseReleasesPushWaiter(t *testing.T) {
	s := New(&fakeChat{})
	cmd := s.waitForPush()
	s.Close()

	if msg := cmd(); msg != nil {
		t.Fatalf("waiter returned %T after close, want nil", msg)
	}
}
