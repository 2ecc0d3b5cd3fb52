// Package chat is the global chat screen: newest page on entry, older
// pages on demand, optimistic local echo, and realtime inserts merged
// through the dedup feed.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	chatfeed "github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

// pageMsg carries one fetched history page.
type pageMsg struct {
	Messages []chatfeed.Message
	Older    bool // true when this was a scroll-back page
	Err      error
}

// sentMsg carries the persisted row of a sent message.
type sentMsg struct {
	Message chatfeed.Message
	Err     error
}

// pushMsg carries one realtime insert.
type pushMsg struct {
	Message chatfeed.Message
}

// subscribedMsg reports the realtime subscription attempt. Unsubscribe
// is handed to the screen on the UI goroutine so teardown never races
// the dial.
type subscribedMsg struct {
	Unsubscribe func()
	Err         error
}

// Screen is the chat view over the dedup feed.
type Screen struct {
	client backend.Chat
	feed   *chatfeed.Feed
	input  components.TextInput

	pushes      chan chatfeed.Message
	done        chan struct{}
	unsubscribe func()
	closed      bool

	loading  bool
	fetching bool
	status   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the chat screen.
func New(client backend.Chat) *Screen {
	return &Screen{
		client:  client,
		feed:    chatfeed.NewFeed(),
		input:   components.NewTextInput("Ton message...", false, chatfeed.MaxContentLen),
		pushes:  make(chan chatfeed.Message, 16),
		done:    make(chan struct{}),
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.fetchNewest(), s.subscribe(), s.input.Init())
}

func (s *Screen) Title() string {
	return "Chat mondial"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Envoyer"},
		{Key: "PgUp", Description: "Messages précédents"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		return s.handlePage(msg)

	case sentMsg:
		if msg.Err != nil {
			s.status = "Envoi impossible : " + msg.Err.Error()
			return s, nil
		}
		// Optimistic echo; the realtime copy of the same id dedups.
		s.feed.Append(msg.Message)
		return s, nil

	case pushMsg:
		s.feed.Append(msg.Message)
		return s, s.waitForPush()

	case subscribedMsg:
		if msg.Err != nil {
			s.status = "Temps réel indisponible."
			return s, nil
		}
		if s.closed {
			msg.Unsubscribe()
			return s, nil
		}
		s.unsubscribe = msg.Unsubscribe
		return s, s.waitForPush()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handlePage(msg pageMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	s.fetching = false
	if msg.Err != nil {
		s.status = "Chargement impossible : " + msg.Err.Error()
		return s, nil
	}
	if msg.Older {
		s.feed.PrependPage(msg.Messages)
	} else {
		s.feed.ReplaceNewest(msg.Messages)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		content := strings.TrimSpace(s.input.Value())
		if content == "" {
			return s, nil
		}
		if len(content) > chatfeed.MaxContentLen {
			content = content[:chatfeed.MaxContentLen]
		}
		s.input = components.NewTextInput("Ton message...", false, chatfeed.MaxContentLen)
		return s, tea.Batch(s.send(content), s.input.Init())

	case "pgup":
		if !s.fetching && s.feed.HasMore() {
			s.fetching = true
			return s, s.fetchOlder()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Close tears down the realtime subscription when the screen leaves the
// stack.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Screen) fetchNewest() tea.Cmd {
	client := s.client
	return func() tea.Msg {
		msgs, err := client.FetchMessages(context.Background(), nil)
		return pageMsg{Messages: msgs, Err: err}
	}
}

func (s *Screen) fetchOlder() tea.Cmd {
	client := s.client
	cursor, ok := s.feed.OldestCursor()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		msgs, err := client.FetchMessages(context.Background(), &cursor)
		return pageMsg{Messages: msgs, Older: true, Err: err}
	}
}

func (s *Screen) send(content string) tea.Cmd {
	client := s.client
	return func() tea.Msg {
		m, err := client.SendMessage(context.Background(), content)
		return sentMsg{Message: m, Err: err}
	}
}

// subscribe opens the realtime stream; pushed inserts land on the
// buffered channel and are pumped into the program by waitForPush.
// The unsubscribe func travels back inside subscribedMsg; if the screen
// closed while the dial was in flight the stream is torn down here.
func (s *Screen) subscribe() tea.Cmd {
	client := s.client
	pushes, done := s.pushes, s.done
	return func() tea.Msg {
		unsub, err := client.SubscribeMessages(func(m chatfeed.Message) {
			select {
			case pushes <- m:
			default:
				// Drop when the UI is too far behind; history refetch
				// heals any gap.
			}
		})
		if err != nil {
			return subscribedMsg{Err: err}
		}
		select {
		case <-done:
			unsub()
			return nil
		default:
		}
		return subscribedMsg{Unsubscribe: unsub}
	}
}

// waitForPush blocks on the push channel and re-arms after each insert.
// Close releases the blocked command through the done channel.
func (s *Screen) waitForPush() tea.Cmd {
	pushes, done := s.pushes, s.done
	return func() tea.Msg {
		select {
		case m := <-pushes:
			return pushMsg{Message: m}
		case <-done:
			return nil
		}
	}
}

func (s *Screen) View(width, height int) string {
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + theme.Hint.Render("Chargement du chat..."))
	}

	var b strings.Builder

	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	msgs := s.feed.Messages()
	start := len(msgs) - visible
	if start < 0 {
		start = 0
	}

	if s.feed.HasMore() && start == 0 {
		b.WriteString(theme.Hint.Render("  PgUp pour les messages précédents") + "\n")
	}

	for _, m := range msgs[start:] {
		b.WriteString(renderMessage(m, width))
		b.WriteString("\n")
	}

	b.WriteString("\n  " + s.input.View())
	if s.status != "" {
		b.WriteString("\n  " + theme.Hint.Render(s.status))
	}
	return b.String()
}

func renderMessage(m chatfeed.Message, width int) string {
	name := m.DisplayName
	if name == "" {
		name = m.SenderName
	}
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(name) +
		theme.Hint.Render(fmt.Sprintf("  %s", m.CreatedAt.Local().Format(time.Kitchen)))

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(m.Content)

	return "  " + header + "\n  " + body
}
