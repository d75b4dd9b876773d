package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/model"
)

type hookStore struct {
	db.Store
	hooks []model.Webhook
}

func (s *hookStore) ListWebhooksForEvent(customerID int, event string) ([]model.Webhook, error) {
	return s.hooks, nil
}

type received struct {
	body      []byte
	signature string
	delivery  string
}

func TestDispatcherDeliversSignedPayload(t *testing.T) {
	got := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{
			body:      body,
			signature: r.Header.Get("X-Lumen-Signature"),
			delivery:  r.Header.Get("X-Lumen-Delivery"),
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := &hookStore{hooks: []model.Webhook{
		{URL: server.URL, Secret: "test-secret-0123456789"},
	}}
	d := NewDispatcher(store, 1)
	defer d.Close()

	d.Emit(1, EventScheduleCreated, map[string]int{"id": 7})

	select {
	case r := <-got:
		assert.Equal(t, Sign("test-secret-0123456789", r.body), r.signature)
		assert.NotEmpty(t, r.delivery)

		var p payload
		require.NoError(t, json.Unmarshal(r.body, &p))
		assert.Equal(t, EventScheduleCreated, p.Event)
		assert.Equal(t, r.delivery, p.DeliveryID)
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never arrived")
	}
}

func TestDispatcherRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		close(done)
	}))
	defer server.Close()

	store := &hookStore{hooks: []model.Webhook{
		{URL: server.URL, Secret: "test-secret-0123456789"},
	}}
	d := NewDispatcher(store, 1, WithRetryPolicy(5, 10*time.Millisecond))
	defer d.Close()

	d.Emit(1, EventScheduleDeleted, nil)

	select {
	case <-done:
		assert.Equal(t, int32(3), calls.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never succeeded")
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Emit(1, EventScheduleCreated, nil)
	d.Close()
}

func TestSignIsDeterministic(t *testing.T) {
	body := []byte(`{"event":"schedule.created"}`)
	assert.Equal(t, Sign("s1", body), Sign("s1", body))
	assert.NotEqual(t, Sign("s1", body), Sign("s2", body))
}
