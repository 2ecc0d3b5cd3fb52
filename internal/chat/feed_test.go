package chat

import (
	"fmt"
	"testing"
	"time"
)

func msg(id string, at time.Time) Message {
	return Message{ID: id, SenderID: 1, Content: "m" + id, CreatedAt: at}
}

func TestFeed_AppendDedup(t *testing.T) {
	f := NewFeed()
	now := time.Now()

	if !f.Append(msg("a", now)) {
		t.Fatal("first append should insert")
	}
	if f.Append(msg("a", now)) {
		t.Error("second append of same id should be dropped")
	}
	if f.Len() != 1 {
		t.Errorf("Len = %d, want 1", f.Len())
	}
}

func TestFeed_OptimisticThenRealtime(t *testing.T) {
	f := NewFeed()
	now := time.Now()

	// Optimistic echo after send, then the realtime insert for the same row.
	f.Append(msg("x", now))
	f.Append(msg("x", now))

	if f.Len() != 1 {
		t.Errorf("Len = %d after duplicate arrival, want 1", f.Len())
	}
}

func TestFeed_ReplaceNewestReversesOrder(t *testing.T) {
	f := NewFeed()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Server pages are newest-first.
	page := []Message{
		msg("3", base.Add(3 * time.Minute)),
		msg("2", base.Add(2 * time.Minute)),
		msg("1", base.Add(1 * time.Minute)),
	}
	f.ReplaceNewest(page)

	got := f.Messages()
	if len(got) != 3 || got[0].ID != "1" || got[2].ID != "3" {
		t.Errorf("messages not in ascending order: %+v", got)
	}
	if f.HasMore() {
		t.Error("short page should close pagination")
	}
}

func TestFeed_PrependPage(t *testing.T) {
	f := NewFeed()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.ReplaceNewest([]Message{msg("5", base.Add(5 * time.Minute)), msg("4", base.Add(4 * time.Minute))})
	f.PrependPage([]Message{msg("3", base.Add(3 * time.Minute)), msg("2", base.Add(2 * time.Minute))})

	got := f.Messages()
	if len(got) != 4 {
		t.Fatalf("Len = %d, want 4", len(got))
	}
	for i, want := range []string{"2", "3", "4", "5"} {
		if got[i].ID != want {
			t.Errorf("messages[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestFeed_PrependEmptyClosesPagination(t *testing.T) {
	f := NewFeed()
	f.Append(msg("a", time.Now()))

	f.PrependPage(nil)
	if f.HasMore() {
		t.Error("empty page should close pagination")
	}
}

func TestFeed_FullPageKeepsPaginationOpen(t *testing.T) {
	f := NewFeed()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	page := make([]Message, PageSize)
	for i := range page {
		page[i] = msg(fmt.Sprintf("m%d", PageSize-i), base.Add(time.Duration(PageSize-i)*time.Second))
	}
	f.ReplaceNewest(page)

	if !f.HasMore() {
		t.Error("full page should keep pagination open")
	}
	if cursor, ok := f.OldestCursor(); !ok || !cursor.Equal(base.Add(1*time.Second)) {
		t.Errorf("OldestCursor = %v, %v", cursor, ok)
	}
}

func TestFeed_OldestCursorEmpty(t *testing.T) {
	f := NewFeed()
	if _, ok := f.OldestCursor(); ok {
		t.Error("empty feed should have no cursor")
	}
}
