package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

const siteColumns = `id, customer_id, name, time_zone, location, created_at, updated_at`

func (s *pgStore) CreateSite(customerID int, name, timeZone string, location *string) (model.Site, error) {
	var site model.Site
	const q = `
	INSERT INTO sites (customer_id, name, time_zone, location, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING ` + siteColumns + `;`
	if err := s.db.Get(&site, q, customerID, name, timeZone, location); err != nil {
		log.Error().Err(err).Msg("CreateSite failed")
		return model.Site{}, err
	}
	return site, nil
}

func (s *pgStore) GetSiteByID(customerID, id int) (model.Site, error) {
	var site model.Site
	const q = `SELECT ` + siteColumns + ` FROM sites WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&site, q, id, customerID); err != nil {
		return model.Site{}, notFound(err)
	}
	return site, nil
}

func (s *pgStore) ListSites(customerID int) ([]model.Site, error) {
	var out []model.Site
	const q = `SELECT ` + siteColumns + ` FROM sites WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListSites failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateSite(customerID, id int, name, timeZone, location *string) error {
	const q = `
	UPDATE sites
	   SET name      = COALESCE($3, name),
	       time_zone = COALESCE($4, time_zone),
	       location  = COALESCE($5, location),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`
	res, err := s.db.Exec(q, id, customerID, name, timeZone, location)
	if err != nil {
		log.Error().Err(err).Int("site_id", id).Msg("UpdateSite failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteSite(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM sites WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("site_id", id).Msg("DeleteSite failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSiteTimeZone is on the player polling path, hence its own narrow query.
func (s *pgStore) GetSiteTimeZone(siteID int) (string, error) {
	var tz string
	if err := s.db.Get(&tz, `SELECT time_zone FROM sites WHERE id = $1;`, siteID); err != nil {
		return "", notFound(err)
	}
	return tz, nil
}
