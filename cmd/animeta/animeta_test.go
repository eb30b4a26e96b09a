package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/animeta/internal/model"
)

func newJikan(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/anime/52991/full":
			_, _ = w.Write([]byte(`{"data":{"mal_id":52991,"title":"Sousou no Frieren","studios":[{"mal_id":11,"name":"Madhouse"}]}}`))
		case "/anime/52991/characters", "/anime/52991/staff":
			_, _ = w.Write([]byte(`{"data":[]}`))
		case "/anime/21/full":
			_, _ = w.Write([]byte(`{"data":{"mal_id":21,"title":"One Piece"}}`))
		case "/anime/21/characters":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/anime":
			_, _ = w.Write([]byte(`{"data":[{"mal_id":52991,"title":"Sousou no Frieren","members":10}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv(EnvJikanURL, srv.URL)
	t.Setenv(EnvRequestInterval, "0s")
	t.Setenv(EnvLogLevel, "disabled")
	return srv
}

func TestRunPrintsTitles(t *testing.T) {
	newJikan(t)
	var out bytes.Buffer

	require.Equal(t, 0, run([]string{"52991"}, &out))
	var title model.Title
	require.NoError(t, json.Unmarshal(out.Bytes(), &title))
	assert.Equal(t, 52991, title.ID)
	assert.Equal(t, []model.Organization{{ID: 11, Name: "Madhouse", Role: model.RoleStudio}}, title.Organizations)
}

func TestRunSkipsRateLimitedTitles(t *testing.T) {
	newJikan(t)
	var out bytes.Buffer

	assert.Equal(t, 0, run([]string{"21", "52991"}, &out))
	assert.Equal(t, 1, strings.Count(out.String(), `"id": 52991`))
	assert.NotContains(t, out.String(), "One Piece")
}

func TestRunFailures(t *testing.T) {
	newJikan(t)
	var out bytes.Buffer

	assert.Equal(t, 1, run([]string{"5"}, &out))
	assert.Equal(t, 1, run([]string{"frieren"}, &out))
	assert.Equal(t, 2, run(nil, &out))
	assert.Empty(t, out.String())

	t.Setenv(EnvRequestInterval, "soon")
	assert.Equal(t, 2, run([]string{"52991"}, &out))
}

func TestRunSearch(t *testing.T) {
	newJikan(t)
	var out bytes.Buffer

	require.Equal(t, 0, run([]string{"-search", "Frieren"}, &out))
	assert.Equal(t, "52991\n", out.String())
}
