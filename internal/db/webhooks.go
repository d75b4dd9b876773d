package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

func (s *pgStore) CreateWebhook(customerID int, url, secret string, events []string) (model.Webhook, error) {
	var w model.Webhook
	const q = `
	INSERT INTO webhooks (customer_id, url, secret, events, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, customer_id, url, secret, events, created_at;`
	if err := s.db.Get(&w, q, customerID, url, secret, pq.Array(events)); err != nil {
		log.Error().Err(err).Msg("CreateWebhook failed")
		return model.Webhook{}, err
	}
	return w, nil
}

func (s *pgStore) ListWebhooks(customerID int) ([]model.Webhook, error) {
	var out []model.Webhook
	const q = `
	SELECT id, customer_id, url, secret, events, created_at
	  FROM webhooks WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListWebhooks failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteWebhook(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM webhooks WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("webhook_id", id).Msg("DeleteWebhook failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) ListWebhooksForEvent(customerID int, event string) ([]model.Webhook, error) {
	var out []model.Webhook
	const q = `
	SELECT id, customer_id, url, secret, events, created_at
	  FROM webhooks
	 WHERE customer_id = $1 AND $2 = ANY(events);`
	if err := s.db.Select(&out, q, customerID, event); err != nil {
		log.Error().Err(err).Str("event", event).Msg("ListWebhooksForEvent failed")
		return nil, err
	}
	return out, nil
}
