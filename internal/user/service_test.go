package user

import (
	"context"
	"testing"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
)

func TestUserCreateAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	svc := NewService(mock)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Anna", "anna@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	created, err := svc.Create(ctx, User{Name: "Anna", Email: "anna@example.com"})
	if err != nil || created.ID != 1 {
		t.Fatalf("create user: %v", err)
	}

	mock.ExpectQuery(`SELECT id, name, email FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email"}).AddRow(int64(1), "Anna", "anna@example.com"))
	got, err := svc.Get(ctx, 1)
	if err != nil || got.Email != "anna@example.com" {
		t.Fatalf("get user: %v", err)
	}

	mock.ExpectQuery(`SELECT id, name, email FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email"}).AddRow(int64(1), "Anna", "anna@example.com"))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(int64(1), "Anna K", "anna@example.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	name := "Anna K"
	if _, err := svc.Update(ctx, 1, Patch{Name: &name}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Anna", "anna@example.com").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err = NewService(mock).Create(context.Background(), User{Name: "Anna", Email: "anna@example.com"})
	if apperr.KindOf(err) != apperr.KindIntegrity {
		t.Fatalf("expected integrity error, got %v", err)
	}
}

func TestUserGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, email FROM users`).
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewService(mock).Get(context.Background(), 2)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
