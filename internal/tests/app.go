package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// NewApp builds the app with in-memory services, so no Redis or Postgres is needed.
func NewApp() *fiber.App {
	cfg := &config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "3000",
		Token:      TestToken,
	}

	return internal.BuildApp(cfg, services.NewMemoryServices())
}

// Request sends a request to app and decodes a JSON response into out, if out is not nil.
func Request(t *testing.T, app *fiber.App, method, url string, body any, headers map[string]string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		var payload bytes.Buffer
		switch b := body.(type) {
		case string:
			payload.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&payload).Encode(b))
		}
		reader = &payload
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}
