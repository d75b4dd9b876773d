package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

const playerColumns = `id, customer_id, site_id, name, device_id, paired, created_at, updated_at`

func (s *pgStore) CreatePlayer(customerID, siteID int, name string) (model.Player, error) {
	var p model.Player
	const q = `
	INSERT INTO players (customer_id, site_id, name, paired, created_at, updated_at)
	VALUES ($1, $2, $3, false, now(), now())
	RETURNING ` + playerColumns + `;`
	if err := s.db.Get(&p, q, customerID, siteID, name); err != nil {
		log.Error().Err(err).Msg("CreatePlayer failed")
		return model.Player{}, err
	}
	return p, nil
}

func (s *pgStore) GetPlayerByID(customerID, id int) (model.Player, error) {
	var p model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&p, q, id, customerID); err != nil {
		return model.Player{}, notFound(err)
	}
	return p, nil
}

// GetPlayerByDeviceID is the device-auth lookup; devices are not tenant
// actors, so this is the one player query not scoped by customer.
func (s *pgStore) GetPlayerByDeviceID(deviceID string) (model.Player, error) {
	var p model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE device_id = $1;`
	if err := s.db.Get(&p, q, deviceID); err != nil {
		return model.Player{}, notFound(err)
	}
	return p, nil
}

// GetPlayerForAuth resolves a device token's subject. The token is the
// credential here, so the lookup is by primary key alone.
func (s *pgStore) GetPlayerForAuth(id int) (model.Player, error) {
	var p model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE id = $1;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Player{}, notFound(err)
	}
	return p, nil
}

func (s *pgStore) ListPlayersBySite(customerID, siteID int) ([]model.Player, error) {
	var out []model.Player
	const q = `
	SELECT ` + playerColumns + `
	  FROM players
	 WHERE customer_id = $1 AND site_id = $2
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID, siteID); err != nil {
		log.Error().Err(err).Msg("ListPlayersBySite failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdatePlayer(customerID, id int, name *string, siteID *int) error {
	const q = `
	UPDATE players
	   SET name = COALESCE($3, name),
	       site_id = COALESCE($4, site_id),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`
	res, err := s.db.Exec(q, id, customerID, name, siteID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("UpdatePlayer failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeletePlayer(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM players WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("DeletePlayer failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) PairPlayer(customerID, id int, deviceID string) error {
	const q = `
	UPDATE players
	   SET device_id = $3, paired = true, updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`
	res, err := s.db.Exec(q, id, customerID, deviceID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("PairPlayer failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
