package city

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestCityHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, country FROM cities`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "country"}).AddRow(int64(4), "Kazan", "Russia"))
	mock.ExpectExec(`DELETE FROM cities`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	app := fiber.New()
	RegisterRoutes(app.Group("/cities"), NewService(mock))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/cities/4", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get status: %v", err)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/cities/5", nil))
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found on delete: %v", err)
	}
}

func TestCityHandlersBadRequest(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/cities"), NewService(nil))

	req := httptest.NewRequest(http.MethodPost, "/cities", bytes.NewReader([]byte(`{"name":"Kazan"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request without country")
	}
}
