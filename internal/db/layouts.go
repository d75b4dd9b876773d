package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

const layoutColumns = `id, customer_id, name, width, height, background_color, created_by, created_at, updated_at`

func (s *pgStore) CreateLayout(customerID int, name string, width, height int, background string, createdBy int) (model.Layout, error) {
	var l model.Layout
	const q = `
	INSERT INTO layouts (customer_id, name, width, height, background_color, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING ` + layoutColumns + `;`
	if err := s.db.Get(&l, q, customerID, name, width, height, background, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateLayout failed")
		return model.Layout{}, err
	}
	return l, nil
}

func (s *pgStore) GetLayoutByID(customerID, id int) (model.Layout, error) {
	var l model.Layout
	const q = `SELECT ` + layoutColumns + ` FROM layouts WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&l, q, id, customerID); err != nil {
		return model.Layout{}, notFound(err)
	}
	return l, nil
}

func (s *pgStore) ListLayouts(customerID int) ([]model.Layout, error) {
	var out []model.Layout
	const q = `SELECT ` + layoutColumns + ` FROM layouts WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListLayouts failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateLayout(customerID, id int, name *string, width, height *int, background *string) error {
	const q = `
	UPDATE layouts
	   SET name             = COALESCE($3, name),
	       width            = COALESCE($4, width),
	       height           = COALESCE($5, height),
	       background_color = COALESCE($6, background_color),
	       updated_at       = now()
	 WHERE id = $1 AND customer_id = $2;`
	res, err := s.db.Exec(q, id, customerID, name, width, height, background)
	if err != nil {
		log.Error().Err(err).Int("layout_id", id).Msg("UpdateLayout failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteLayout(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM layouts WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("layout_id", id).Msg("DeleteLayout failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
