// Package notify posts session lifecycle events to an external webhook.
// Delivery is best-effort by design: no retry, no surfaced errors.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const (
	EventSessionComplete   = "session_complete"
	EventSessionEndedEarly = "session_ended_early"
)

type Event struct {
	Event           string    `json:"event"`
	SessionID       string    `json:"session_id"`
	TaskID          string    `json:"task_id"`
	DurationMinutes int       `json:"duration_min"`
	EndedAt         time.Time `json:"ended_at"`
}

type Notifier struct {
	url        string
	httpClient *http.Client
}

func NewNotifier(url string, timeout time.Duration) *Notifier {
	return &Notifier{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts the event if a webhook URL is configured. Failures are
// discarded, not swallowed by accident: this method has no error to return.
func (n *Notifier) Send(ctx context.Context, event Event) {
	if n == nil || n.url == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return
	}
	// Drain so the keep-alive connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
