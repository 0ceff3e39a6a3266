package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"quiz-master/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		deps     *testDeps
		status   int
		overall  string
		database string
		redis    string
	}{
		{"all up", &testDeps{cache: fakeCache{}}, http.StatusOK, "ok", "ok", "ok"},
		{"redis disabled", &testDeps{}, http.StatusOK, "ok", "ok", "disabled"},
		{"redis down", &testDeps{cache: fakeCache{pingErr: errors.New("refused")}}, http.StatusOK, "degraded", "ok", "unavailable"},
		{"database down", &testDeps{db: fakePinger{err: errors.New("ORA-12541")}}, http.StatusServiceUnavailable, "degraded", "unavailable", "disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, setupApp(tt.deps), http.MethodGet, "/healthz", nil)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body dto.HealthResponse
			readJSON(t, resp, &body)
			assert.Equal(t, tt.overall, body.Status)
			assert.Equal(t, tt.database, body.Checks["database"])
			assert.Equal(t, tt.redis, body.Checks["redis"])
		})
	}
}
