package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runAdminAPI(t *testing.T, token string) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/banners/b1", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := Session(newOpener())(RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	}))(c)
	return rec, called, err
}

func TestRequireAdmin_Allows(t *testing.T) {
	rec, called, err := runAdminAPI(t, "admin-token")
	if err != nil || !called || rec.Code != http.StatusNoContent {
		t.Fatalf("expected admin to pass: err=%v called=%v code=%d", err, called, rec.Code)
	}
}

func TestRequireAdmin_ForbidsUser(t *testing.T) {
	rec, called, err := runAdminAPI(t, "user-token")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_UnauthenticatedIs401(t *testing.T) {
	_, called, err := runAdminAPI(t, "")
	if called {
		t.Fatalf("should not reach next handler")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireAdmin_WithoutSessionIsRejected(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)
	if err == nil {
		t.Fatalf("expected rejection")
	}
}
