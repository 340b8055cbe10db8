package category

import (
	"context"

	"github.com/Ultro163/city-guide/internal/db"
)

const (
	table  = "categories"
	entity = "category"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input Category) (Category, error) {
	row := s.db.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, input.Name)
	if err := row.Scan(&input.ID); err != nil {
		return Category{}, db.Translate(err, entity, 0)
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := s.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return Category{}, db.Translate(err, entity, id)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if _, err := s.db.Exec(ctx, `UPDATE categories SET name=$2 WHERE id=$1`, c.ID, c.Name); err != nil {
		return Category{}, db.Translate(err, entity, id)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.DeleteByID(ctx, s.db, table, entity, id)
}
