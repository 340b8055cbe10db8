package user

import (
	"context"

	"github.com/Ultro163/city-guide/internal/db"
)

const (
	table  = "users"
	entity = "user"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input User) (User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO users (name, email)
		VALUES ($1,$2)
		RETURNING id
	`, input.Name, input.Email)
	if err := row.Scan(&input.ID); err != nil {
		return User{}, db.Translate(err, entity, 0)
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.db.QueryRow(ctx, `SELECT id, name, email FROM users WHERE id=$1`, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return User{}, db.Translate(err, entity, id)
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	_, err = s.db.Exec(ctx, `UPDATE users SET name=$2, email=$3 WHERE id=$1`, u.ID, u.Name, u.Email)
	if err != nil {
		return User{}, db.Translate(err, entity, id)
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.DeleteByID(ctx, s.db, table, entity, id)
}
