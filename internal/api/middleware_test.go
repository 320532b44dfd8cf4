package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/ventas-service/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeJSONFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "object datos",
			in:   `{"dni":"1","datos":{"tier": "gold"}}`,
			want: `{"dni":"1","datos":"{\"tier\":\"gold\"}"}`,
		},
		{
			name: "list productos",
			in:   `{"id":"v","productos":[{"sku":"A"}, {"sku":"B"}],"total":3}`,
			want: `{"id":"v","productos":"[{\"sku\":\"A\"},{\"sku\":\"B\"}]","total":3}`,
		},
		{
			name: "string passes through",
			in:   `{"datos":"{\"ya\":1}"}`,
			want: `{"datos":"{\"ya\":1}"}`,
		},
		{
			name: "null passes through",
			in:   `{"datos":null,"productos":null}`,
			want: `{"datos":null,"productos":null}`,
		},
		{
			name: "false and zero pass through",
			in:   `{"datos":false,"productos":0}`,
			want: `{"datos":false,"productos":0}`,
		},
		{
			name: "truthy scalars pass through",
			in:   `{"datos":true,"productos":12.5}`,
			want: `{"datos":true,"productos":12.5}`,
		},
		{
			name: "other fields untouched",
			in:   `{"nombres":{"a":1}}`,
			want: `{"nombres":{"a":1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, string(api.SerializeJSONFields([]byte(tt.in))))
		})
	}
}

func TestSerializeJSONFields_NonObjectBodiesUnchanged(t *testing.T) {
	for _, in := range []string{``, `[1,2]`, `{"dni":`, `"texto"`} {
		assert.Equal(t, in, string(api.SerializeJSONFields([]byte(in))))
	}
}

// fakeCounter cuenta en memoria e ignora la ventana para no depender del reloj
type fakeCounter struct {
	mu    sync.Mutex
	count int64
	keys  []string
	err   error
}

func (f *fakeCounter) IncrWindow(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.keys = append(f.keys, key)
	f.count++
	return f.count, nil
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	counter := &fakeCounter{}
	router, _ := setupRouter(t, counter)

	// testConfig permite 130 solicitudes por minuto
	for i := 0; i < 130; i++ {
		w := doRequest(t, router, http.MethodGet, "/api/clientes", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := doRequest(t, router, http.MethodGet, "/api/clientes", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Demasiadas solicitudes"}`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, counter.keys[0], "ratelimit:")
}

func TestRateLimit_CounterFailureLetsRequestsThrough(t *testing.T) {
	router, _ := setupRouter(t, &fakeCounter{err: errors.New("redis down")})

	w := doRequest(t, router, http.MethodGet, "/api/clientes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	router, _ := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ventas", nil)
	req.Header.Set("X-Request-ID", "9b2f6c1e-4d3a-4c8b-9e7f-1a2b3c4d5e6f")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "9b2f6c1e-4d3a-4c8b-9e7f-1a2b3c4d5e6f", w.Header().Get("X-Request-ID"))
}

func TestRequestLogger_ReplacesMalformedRequestID(t *testing.T) {
	router, _ := setupRouter(t, nil)

	for _, header := range []string{
		"abc-123",
		strings.Repeat("x", 4096),
		"9b2f6c1e-4d3a-4c8b-9e7f-1a2b3c4d5e6f;extra",
		"{9b2f6c1e-4d3a-4c8b-9e7f-1a2b3c4d5e6f}",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/ventas", nil)
		req.Header.Set("X-Request-ID", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		got := w.Header().Get("X-Request-ID")
		assert.NotEqual(t, header, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, got)
		assert.Len(t, got, 36)
	}
}
