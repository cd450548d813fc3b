package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
)

var (
	serverOnce sync.Once
	server     *Server
)

func testServer() *Server {
	serverOnce.Do(func() {
		tables := fto.GenerateMoveTables()
		server = NewServer(tables, fto.NewPhase1Solver(tables, 10))
	})
	return server
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleSolve(t *testing.T) {
	body := strings.NewReader(`{"scramble": "R L' D"}`)
	req := httptest.NewRequest("POST", "/api/solve", body)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SolveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, resp.Steps, len(strings.Fields(resp.Solution)))
	assert.LessOrEqual(t, resp.Steps, 3)

	state, err := ften.ParseFTEN(resp.State)
	require.NoError(t, err)
	assert.True(t, fto.IsPhase1Solved(state.ToCoords()))
}

func TestHandleSolveBadScramble(t *testing.T) {
	body := strings.NewReader(`{"scramble": "R X"}`)
	req := httptest.NewRequest("POST", "/api/solve", body)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolveBadJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/solve", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScramble(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/scramble", nil)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScrambleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	_, err := ften.ParseFTEN(resp.State)
	assert.NoError(t, err)
}

func TestHandleRender(t *testing.T) {
	body := strings.NewReader(`{"scramble": "U F'"}`)
	req := httptest.NewRequest("POST", "/api/render", body)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<svg"))
}
