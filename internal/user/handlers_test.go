package user

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestUserHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Anna", "anna@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	app := fiber.New()
	RegisterRoutes(app.Group("/users"), NewService(mock))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"name":"Anna","email":"anna@example.com"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status: %v", err)
	}
}

func TestUserHandlersValidation(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/users"), NewService(nil))

	for _, body := range []string{
		`{"name":"A","email":"anna@example.com"}`,
		`{"name":"Anna","email":"not-an-email"}`,
		`{"name":"Anna","email":"a@b"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request for %s", body)
		}
	}
}
