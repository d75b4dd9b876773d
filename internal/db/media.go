package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

func (s *pgStore) CreateMedia(customerID int, name, mediaType, url string, createdBy int) (model.Media, error) {
	var m model.Media
	const q = `
	INSERT INTO media (customer_id, name, type, url, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING id, customer_id, name, type, url, created_by, created_at;`
	if err := s.db.Get(&m, q, customerID, name, mediaType, url, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateMedia failed")
		return model.Media{}, err
	}
	return m, nil
}

func (s *pgStore) GetMediaByID(customerID, id int) (model.Media, error) {
	var m model.Media
	const q = `
	SELECT id, customer_id, name, type, url, created_by, created_at
	  FROM media WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&m, q, id, customerID); err != nil {
		return model.Media{}, notFound(err)
	}
	return m, nil
}

func (s *pgStore) ListMedia(customerID int) ([]model.Media, error) {
	var out []model.Media
	const q = `
	SELECT id, customer_id, name, type, url, created_by, created_at
	  FROM media WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListMedia failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteMedia(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM media WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("media_id", id).Msg("DeleteMedia failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
