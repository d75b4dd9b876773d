// Package webhook delivers backend events to customer-registered HTTP
// endpoints. Deliveries are queued and sent by a small worker pool; each
// attempt is signed with the subscription secret so receivers can verify
// origin.
package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/db"
)

// Event names published by the backend.
const (
	EventScheduleCreated   = "schedule.created"
	EventScheduleUpdated   = "schedule.updated"
	EventScheduleDeleted   = "schedule.deleted"
	EventAssignmentCreated = "assignment.created"
	EventAssignmentDeleted = "assignment.deleted"
	EventPlayerPaired      = "player.paired"
)

type payload struct {
	DeliveryID string    `json:"delivery_id"`
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type delivery struct {
	url    string
	secret string
	body   []byte
	id     string
}

// Dispatcher fans events out to matching subscriptions asynchronously.
// Emit never blocks the request path beyond a channel send.
type Dispatcher struct {
	store      db.Store
	client     *http.Client
	queue      chan delivery
	done       chan struct{}
	maxRetries int
	baseDelay  time.Duration
}

type Option func(*Dispatcher)

// WithRetryPolicy overrides attempts and the initial backoff delay.
func WithRetryPolicy(maxRetries int, baseDelay time.Duration) Option {
	return func(d *Dispatcher) {
		d.maxRetries = maxRetries
		d.baseDelay = baseDelay
	}
}

func NewDispatcher(store db.Store, workers int, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:      store,
		client:     &http.Client{Timeout: 10 * time.Second},
		queue:      make(chan delivery, 256),
		done:       make(chan struct{}),
		maxRetries: 5,
		baseDelay:  time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

// Emit looks up the customer's subscriptions for the event and queues one
// delivery per match. A full queue drops the delivery rather than stalling
// a request: webhooks are at-most-once by design here.
func (d *Dispatcher) Emit(customerID int, event string, data any) {
	if d == nil {
		return
	}
	hooks, err := d.store.ListWebhooksForEvent(customerID, event)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("webhook lookup failed")
		return
	}
	for _, h := range hooks {
		id := uuid.NewString()
		body, err := json.Marshal(payload{
			DeliveryID: id,
			Event:      event,
			OccurredAt: time.Now().UTC(),
			Data:       data,
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Msg("webhook payload marshal failed")
			continue
		}
		select {
		case d.queue <- delivery{url: h.URL, secret: h.Secret, body: body, id: id}:
		default:
			log.Warn().Str("url", h.URL).Str("event", event).Msg("webhook queue full, dropping delivery")
		}
	}
}

func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.done)
}

func (d *Dispatcher) worker() {
	for {
		select {
		case <-d.done:
			return
		case dl := <-d.queue:
			d.deliver(dl)
		}
	}
}

// deliver posts with exponential backoff: baseDelay, 2x, 4x, ...
func (d *Dispatcher) deliver(dl delivery) {
	delay := d.baseDelay
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		if d.attempt(dl) {
			return
		}
		select {
		case <-d.done:
			return
		case <-time.After(delay):
		}
		delay *= 2
	}
	log.Error().Str("url", dl.url).Str("delivery_id", dl.id).
		Int("attempts", d.maxRetries).Msg("webhook delivery gave up")
}

func (d *Dispatcher) attempt(dl delivery) bool {
	req, err := http.NewRequest(http.MethodPost, dl.url, bytes.NewReader(dl.body))
	if err != nil {
		log.Error().Err(err).Str("url", dl.url).Msg("webhook request build failed")
		return true // permanent, do not retry
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lumen-Delivery", dl.id)
	req.Header.Set("X-Lumen-Signature", Sign(dl.secret, dl.body))

	resp, err := d.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", dl.url).Msg("webhook attempt failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true
	}
	log.Warn().Int("status", resp.StatusCode).Str("url", dl.url).Msg("webhook attempt rejected")
	return false
}

// Sign computes the hex HMAC-SHA256 receivers compare against.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
