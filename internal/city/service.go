package city

import (
	"context"

	"github.com/Ultro163/city-guide/internal/db"
)

const (
	table  = "cities"
	entity = "city"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input City) (City, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO cities (name, country)
		VALUES ($1,$2)
		RETURNING id
	`, input.Name, input.Country)
	if err := row.Scan(&input.ID); err != nil {
		return City{}, db.Translate(err, entity, 0)
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id int64) (City, error) {
	var c City
	err := s.db.QueryRow(ctx, `SELECT id, name, country FROM cities WHERE id=$1`, id).Scan(&c.ID, &c.Name, &c.Country)
	if err != nil {
		return City{}, db.Translate(err, entity, id)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (City, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return City{}, err
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	_, err = s.db.Exec(ctx, `UPDATE cities SET name=$2, country=$3 WHERE id=$1`, c.ID, c.Name, c.Country)
	if err != nil {
		return City{}, db.Translate(err, entity, id)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.DeleteByID(ctx, s.db, table, entity, id)
}
