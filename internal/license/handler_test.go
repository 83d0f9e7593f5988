package license

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unexpected server error"})
		},
	})
	api := app.Group("/api")
	api.Get("/licenses", ListLicensesHandler(svc))
	api.Get("/licenses/:id", GetLicenseHandler(svc))
	api.Post("/licenses", CreateLicenseHandler(svc))
	api.Put("/licenses/:id", UpdateLicenseHandler(svc))
	api.Delete("/licenses/:id", DeleteLicenseHandler(svc))
	return app
}

func listLicenses(t *testing.T, app *fiber.App, query string) (int, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/licenses"+query, nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if res.StatusCode != http.StatusOK {
		return res.StatusCode, nil
	}
	var body []map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Create(licenseDTO("Acme", "CTL", "2024-03-15"))
	require.NoError(t, err)
	_, err = svc.Create(licenseDTO("Globex", "PRSL", "2023-07-01"))
	require.NoError(t, err)
}

func TestListLicensesUnfiltered(t *testing.T) {
	svc := NewService(newFakeRepository())
	seed(t, svc)
	app := newTestApp(svc)

	status, body := listLicenses(t, app, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body, 2)
}

func TestListLicensesTypeFilterWinsOverCompanyName(t *testing.T) {
	svc := NewService(newFakeRepository())
	seed(t, svc)
	app := newTestApp(svc)

	// type matches only the Acme CTL license; the companyName param that
	// would match Globex is ignored.
	status, body := listLicenses(t, app, "?type=CTL&companyName=Globex")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body, 1)
	assert.Equal(t, "CTL", body[0]["licenseType"])
	assert.Equal(t, "Acme", body[0]["companyName"])
}

func TestListLicensesTypeFilterIsExact(t *testing.T) {
	svc := NewService(newFakeRepository())
	seed(t, svc)
	app := newTestApp(svc)

	status, _ := listLicenses(t, app, "?type=ctl")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListLicensesCompanyNameFilter(t *testing.T) {
	svc := NewService(newFakeRepository())
	seed(t, svc)
	app := newTestApp(svc)

	status, body := listLicenses(t, app, "?companyName=glob")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body, 1)
	assert.Equal(t, "Globex", body[0]["companyName"])
}

func TestListLicensesIssueDateRangeFilter(t *testing.T) {
	svc := NewService(newFakeRepository())
	seed(t, svc)
	app := newTestApp(svc)

	status, body := listLicenses(t, app, "?from=2024-01-01&to=2024-12-31")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body, 1)
	assert.Equal(t, "Acme", body[0]["companyName"])

	// A lone bound does not activate the range filter.
	status, body = listLicenses(t, app, "?from=2024-01-01")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body, 2)
}

func TestGetLicenseNotFoundMapsTo404(t *testing.T) {
	app := newTestApp(NewService(newFakeRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/licenses/missing", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
