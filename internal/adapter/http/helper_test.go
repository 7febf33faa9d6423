package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mw "peerlend-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

const (
	lenderID   = "11111111111111111111111111111111"
	ownerID    = "22222222222222222222222222222222"
	strangerID = "33333333333333333333333333333333"
	oppID      = "cccccccccccccccccccccccccccccccc"
	bizID      = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// newCtx builds a context with path params and, when p is non-nil, an
// authenticated principal already attached.
func newCtx(e *echo.Echo, method, target string, body io.Reader, p *mw.Principal, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		mw.SetPrincipal(c, *p)
	}
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad error json: %v; raw=%s", err, rec.Body.String())
	}
	return er
}

func testTokens() *mw.TokenManager { return mw.NewTokenManager("peerlend", "peerlend-api", "test-secret") }

func bearer(t *testing.T, userID string, typ mw.UserType) string {
	t.Helper()
	tok, err := testTokens().Mint(mw.Principal{UserID: userID, Type: typ}, time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return "Bearer " + tok
}
