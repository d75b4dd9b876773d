package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

func (s *pgStore) CreateCustomer(name string) (int, error) {
	var id int
	const q = `
	INSERT INTO customers (name, created_at, updated_at)
	VALUES ($1, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, name); err != nil {
		log.Error().Err(err).Msg("CreateCustomer failed")
		return 0, err
	}
	return id, nil
}

func (s *pgStore) CreateUser(customerID int, email, hashedPassword string, name *string) (int, error) {
	var id int
	const q = `
	INSERT INTO users (customer_id, email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, customerID, email, hashedPassword, name); err != nil {
		log.Error().Err(err).Msg("CreateUser failed")
		return 0, err
	}
	return id, nil
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, customer_id, email, hashed_password, name, created_at, updated_at
	  FROM users WHERE email = $1;`
	if err := s.db.Get(&u, q, email); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, customer_id, email, hashed_password, name, created_at, updated_at
	  FROM users WHERE id = $1;`
	if err := s.db.Get(&u, q, id); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	const q = `
	UPDATE users
	   SET email = $2, name = COALESCE($3, name), updated_at = now()
	 WHERE id = $1;`
	if _, err := s.db.Exec(q, id, email, name); err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("UpdateUserProfile failed")
		return err
	}
	return nil
}
