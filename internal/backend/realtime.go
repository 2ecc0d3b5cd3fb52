package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
)

const (
	wsHandshakeTimeout = 10 * time.Second
	wsRedialDelay      = 5 * time.Second
	wsReadDeadline     = 90 * time.Second
)

// realtimeEvent is the envelope pushed on the message channel.
type realtimeEvent struct {
	Event   string       `json:"event"`
	Message chat.Message `json:"message"`
}

// SubscribeMessages opens the realtime websocket and delivers every
// pushed message insert to handler until the returned unsubscribe func
// is called. The reader goroutine redials on transport errors; dropped
// intervals are healed by the caller's id-based dedup, not replayed.
func (r *Remote) SubscribeMessages(handler func(chat.Message)) (func(), error) {
	if r.wsURL == "" {
		return nil, errors.New("realtime endpoint not configured")
	}

	done := make(chan struct{})
	var once sync.Once

	var mu sync.Mutex
	var conn *websocket.Conn

	dial := func() (*websocket.Conn, error) {
		dialer := websocket.Dialer{HandshakeTimeout: wsHandshakeTimeout}
		header := http.Header{}
		if r.token != "" {
			header.Set("Authorization", "Bearer "+r.token)
		}
		c, _, err := dialer.Dial(r.wsURL, header)
		return c, err
	}

	go func() {
		for {
			select {
			case <-done:
				return
			default:
			}

			c, err := dial()
			if err != nil {
				select {
				case <-done:
					return
				case <-time.After(wsRedialDelay):
					continue
				}
			}
			mu.Lock()
			conn = c
			mu.Unlock()

			for {
				c.SetReadDeadline(time.Now().Add(wsReadDeadline))
				_, data, err := c.ReadMessage()
				if err != nil {
					c.Close()
					break
				}
				var ev realtimeEvent
				if err := json.Unmarshal(data, &ev); err != nil {
					continue
				}
				if ev.Event != "message.insert" {
					continue
				}
				select {
				case <-done:
					return
				default:
					handler(ev.Message)
				}
			}
		}
	}()

	unsubscribe := func() {
		once.Do(func() {
			close(done)
			mu.Lock()
			if conn != nil {
				conn.Close()
			}
			mu.Unlock()
		})
	}
	return unsubscribe, nil
}
