package loggingmw

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, buf *bytes.Buffer, header http.Header) {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(logger))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLoggerGeneratedRequestID(t *testing.T) {
	var buf bytes.Buffer
	serve(t, &buf, nil)
	require.Contains(t, buf.String(), `"request_id"`)
}

func TestRequestLoggerClientRequestID(t *testing.T) {
	var buf bytes.Buffer
	serve(t, &buf, http.Header{echo.HeaderXRequestID: []string{"rid-123"}})
	require.Contains(t, buf.String(), `"request_id":"rid-123"`)
}
