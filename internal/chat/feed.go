// Package chat holds the global-chat feed reconciliation: one ordered
// message list fed by an optimistic local echo path and a realtime push
// path, merged by message identity.
package chat

import "time"

// PageSize is the chat history page size. A fetched page shorter than
// this exhausts pagination.
const PageSize = 50

// MaxContentLen bounds a message body.
const MaxContentLen = 500

// Message is one chat message row.
type Message struct {
	ID          string    `json:"id"`
	SenderID    int       `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// Feed is the in-memory message list, ordered by creation time ascending.
// Both writer paths (optimistic echo and realtime insert) go through
// Append, so the same row arriving twice converges to one copy. All
// mutation happens on the UI goroutine; the dedup needs no lock.
type Feed struct {
	messages []Message
	seen     map[string]bool
	hasMore  bool
}

// NewFeed returns an empty feed. Pagination is open until the first
// short page.
func NewFeed() *Feed {
	return &Feed{seen: make(map[string]bool), hasMore: true}
}

// Messages returns the current list, oldest first.
func (f *Feed) Messages() []Message {
	return f.messages
}

// Len returns the number of held messages.
func (f *Feed) Len() int {
	return len(f.messages)
}

// HasMore reports whether older pages may remain.
func (f *Feed) HasMore() bool {
	return f.hasMore
}

// Append adds a message at the newest end unless its id is already held.
// Returns true when the message was inserted.
func (f *Feed) Append(m Message) bool {
	if f.seen[m.ID] {
		return false
	}
	f.seen[m.ID] = true
	f.messages = append(f.messages, m)
	return true
}

// ReplaceNewest resets the feed with the newest page as fetched from the
// server (descending order); the page is reversed for ascending display.
func (f *Feed) ReplaceNewest(page []Message) {
	f.messages = f.messages[:0]
	f.seen = make(map[string]bool, len(page))
	for i := len(page) - 1; i >= 0; i-- {
		f.Append(page[i])
	}
	f.hasMore = len(page) >= PageSize
}

// PrependPage inserts an older page (descending order from the server)
// before the currently held messages, skipping ids already present.
// An empty or short page closes pagination.
func (f *Feed) PrependPage(page []Message) {
	if len(page) == 0 {
		f.hasMore = false
		return
	}

	older := make([]Message, 0, len(page))
	for i := len(page) - 1; i >= 0; i-- {
		m := page[i]
		if f.seen[m.ID] {
			continue
		}
		f.seen[m.ID] = true
		older = append(older, m)
	}
	f.messages = append(older, f.messages...)
	f.hasMore = len(page) >= PageSize
}

// OldestCursor returns the creation time of the oldest held message,
// used as the pagination cursor. ok is false on an empty feed.
func (f *Feed) OldestCursor() (time.Time, bool) {
	if len(f.messages) == 0 {
		return time.Time{}, false
	}
	return f.messages[0].CreatedAt, true
}
