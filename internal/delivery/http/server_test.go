package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-admin/internal/config"
	httpDelivery "github.com/venue-admin/internal/delivery/http"
	"github.com/venue-admin/internal/delivery/http/handler"
	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/infrastructure/backend"
	"github.com/venue-admin/internal/pkg/metrics"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase"
)

// fakeBackend - REST бэкенд в памяти; считает запросы по "METHOD path"
type fakeBackend struct {
	mu       sync.Mutex
	users    []domain.User
	venues   map[string]*domain.Venue
	unavail  map[string][]domain.VenueUnavailability
	calls    map[string]int
	bodies   map[string]map[string]interface{}
	lastAuth string
	nextID   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users: []domain.User{
			{ID: "u1", Username: "alice", IsActive: true, Scopes: []string{"admin"}},
		},
		venues: map[string]*domain.Venue{
			"v1": {
				ID:           "v1",
				Name:         "Arena",
				Description:  "Indoor football arena",
				SportTypes:   []domain.SportType{domain.SportFootball},
				Address:      "Gran Via 1",
				City:         "Madrid",
				PricePerHour: "40.00",
				Currency:     "EUR",
				Capacity:     20,
				IsIndoor:     true,
				Amenities:    []string{},
				WorkingHours: domain.WorkingHours{domain.DayMonday: {Open: "08:00", Close: "20:00"}},
				Status:       domain.VenueStatusActive,
				Rating:       "4.50",
			},
		},
		unavail: map[string][]domain.VenueUnavailability{},
		calls:   map[string]int{},
		bodies:  map[string]map[string]interface{}{},
	}
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *fakeBackend) body(key string) map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	record := func(next func(w http.ResponseWriter, r *http.Request, raw []byte)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			b.mu.Lock()
			defer b.mu.Unlock()

			key := r.Method + " " + r.URL.Path
			b.calls[key]++
			b.lastAuth = r.Header.Get("Authorization")
			if len(raw) > 0 {
				var body map[string]interface{}
				if json.Unmarshal(raw, &body) == nil {
					b.bodies[key] = body
				}
			}
			next(w, r, raw)
		}
	}

	mux.HandleFunc("GET /users", record(func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeJSON(w, http.StatusOK, b.users)
	}))
	mux.HandleFunc("POST /users", record(func(w http.ResponseWriter, r *http.Request, raw []byte) {
		var in domain.UserCreate
		json.Unmarshal(raw, &in)
		b.nextID++
		user := domain.User{ID: fmt.Sprintf("u-new-%d", b.nextID), Username: in.Username, IsActive: in.IsActive, Scopes: []string{}}
		b.users = append(b.users, user)
		writeJSON(w, http.StatusCreated, user)
	}))
	mux.HandleFunc("GET /venues", record(func(w http.ResponseWriter, r *http.Request, _ []byte) {
		items := make([]domain.VenueListItem, 0, len(b.venues))
		for _, v := range b.venues {
			items = append(items, v.ListItem())
		}
		writeJSON(w, http.StatusOK, items)
	}))
	mux.HandleFunc("GET /venues/{id}", record(func(w http.ResponseWriter, r *http.Request, _ []byte) {
		v, ok := b.venues[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Venue not found"})
			return
		}
		writeJSON(w, http.StatusOK, v)
	}))
	mux.HandleFunc("PATCH /venues/{id}", record(func(w http.ResponseWriter, r *http.Request, raw []byte) {
		v := b.venues[r.PathValue("id")]
		json.Unmarshal(raw, v)
		if bytes.Contains(raw, []byte(`"working_hours":null`)) {
			v.WorkingHours = nil
		}
		writeJSON(w, http.StatusOK, v)
	}))
	mux.HandleFunc("PATCH /venues/{id}/status", record(func(w http.ResponseWriter, r *http.Request, raw []byte) {
		var in domain.VenueStatusUpdate
		json.Unmarshal(raw, &in)
		b.venues[r.PathValue("id")].Status = in.Status
		writeJSON(w, http.StatusOK, in)
	}))
	mux.HandleFunc("GET /venues/{id}/unavailabilities", record(func(w http.ResponseWriter, r *http.Request, _ []byte) {
		list := b.unavail[r.PathValue("id")]
		if list == nil {
			list = []domain.VenueUnavailability{}
		}
		writeJSON(w, http.StatusOK, list)
	}))
	mux.HandleFunc("POST /venues/{id}/unavailabilities", record(func(w http.ResponseWriter, r *http.Request, raw []byte) {
		var in domain.VenueUnavailabilityInput
		json.Unmarshal(raw, &in)
		venueID := r.PathValue("id")
		b.nextID++
		out := domain.VenueUnavailability{
			ID:            fmt.Sprintf("un-%d", b.nextID),
			VenueID:       venueID,
			StartDatetime: in.StartDatetime,
			EndDatetime:   in.EndDatetime,
			Reason:        in.Reason,
		}
		b.unavail[venueID] = append(b.unavail[venueID], out)
		writeJSON(w, http.StatusCreated, out)
	}))

	return mux
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total   int   `json:"total"`
		Changed *bool `json:"changed"`
	} `json:"meta"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

type testEnv struct {
	server  *httpDelivery.Server
	backend *fakeBackend
	cache   *querycache.Cache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	fb := newFakeBackend()
	ts := httptest.NewServer(fb.handler())
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		Backend: config.BackendConfig{BaseURL: ts.URL, Timeout: 5 * time.Second},
		CORS:    config.CORSConfig{AllowOrigins: "http://localhost:3000"},
	}

	cache := querycache.New(logger)
	client := backend.NewClient(&cfg.Backend, logger)
	cacheSync := usecase.NewCacheSync(cache, nil, logger)

	userUC := usecase.NewUserUseCase(client, cacheSync, logger)
	venueUC := usecase.NewVenueUseCase(client, cacheSync, logger)
	imageUC := usecase.NewVenueImageUseCase(client, cacheSync, logger)
	unavailUC := usecase.NewVenueUnavailabilityUseCase(client, cacheSync, logger)
	statsUC := usecase.NewStatsUseCase(userUC, venueUC, logger)

	server := httpDelivery.NewServer(cfg, logger, httpDelivery.Handlers{
		User:                handler.NewUserHandler(userUC, statsUC, logger),
		Venue:               handler.NewVenueHandler(venueUC, statsUC, logger),
		VenueImage:          handler.NewVenueImageHandler(imageUC, logger),
		VenueUnavailability: handler.NewVenueUnavailabilityHandler(unavailUC, logger),
		Health:              handler.NewHealthHandler(cache, nil, logger),
		Metrics:             metrics.New(cache),
	})

	return &testEnv{server: server, backend: fb, cache: cache}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := e.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestServer_CreatedUserIsListedFirstWithoutRefetch(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, env.backend.count("GET /users"))

	status, res = env.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
		"username": "bob",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, res = env.do(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, status)

	var users []domain.User
	require.NoError(t, json.Unmarshal(res.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
	assert.Equal(t, 2, res.Meta.Total)
	assert.Equal(t, 1, env.backend.count("GET /users"))
}

func TestServer_CreateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
		"username": "b",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
	assert.Contains(t, res.Error.Details, "password")
	assert.Equal(t, 0, env.backend.count("POST /users"))
}

func TestServer_EditVenueSendsOnlyChangedFields(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPatch, "/api/v1/venues/v1", map[string]interface{}{
		"name": "Arena Norte",
		"city": "Madrid",
		"working_hours": map[string]interface{}{
			"1": map[string]interface{}{"enabled": true, "open": "08:00", "close": "20:00"},
		},
	})
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, res.Meta.Changed)
	assert.True(t, *res.Meta.Changed)

	assert.Equal(t, map[string]interface{}{"name": "Arena Norte"}, env.backend.body("PATCH /venues/v1"))

	// the detail is refetched after the edit
	status, res = env.do(t, http.MethodGet, "/api/v1/venues/v1", nil)
	require.Equal(t, http.StatusOK, status)
	var venue domain.Venue
	require.NoError(t, json.Unmarshal(res.Data, &venue))
	assert.Equal(t, "Arena Norte", venue.Name)
	assert.Equal(t, 2, env.backend.count("GET /venues/v1"))
}

func TestServer_EditVenueClearsWorkingHours(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPatch, "/api/v1/venues/v1", map[string]interface{}{
		"working_hours": map[string]interface{}{
			"1": map[string]interface{}{"enabled": false, "open": "08:00", "close": "20:00"},
		},
	})
	require.Equal(t, http.StatusOK, status)

	body := env.backend.body("PATCH /venues/v1")
	require.Contains(t, body, "working_hours")
	assert.Nil(t, body["working_hours"])
	assert.Len(t, body, 1)
}

func TestServer_EditVenueUnchangedSendsNothing(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPatch, "/api/v1/venues/v1", map[string]interface{}{
		"name":     "Arena",
		"capacity": 20,
	})
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, res.Meta.Changed)
	assert.False(t, *res.Meta.Changed)
	assert.Equal(t, 0, env.backend.count("PATCH /venues/v1"))
}

func TestServer_VenueStatus(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/v1/venues", nil)
	require.Equal(t, http.StatusOK, status)

	status, res := env.do(t, http.MethodPatch, "/api/v1/venues/v1/status", map[string]string{"status": "active"})
	require.Equal(t, http.StatusOK, status)
	assert.False(t, *res.Meta.Changed)
	assert.Equal(t, 0, env.backend.count("PATCH /venues/v1/status"))

	status, res = env.do(t, http.MethodPatch, "/api/v1/venues/v1/status", map[string]string{"status": "maintenance"})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, *res.Meta.Changed)
	assert.Equal(t, 1, env.backend.count("PATCH /venues/v1/status"))

	status, res = env.do(t, http.MethodGet, "/api/v1/venues", nil)
	require.Equal(t, http.StatusOK, status)
	var venues []domain.VenueListItem
	require.NoError(t, json.Unmarshal(res.Data, &venues))
	require.Len(t, venues, 1)
	assert.Equal(t, domain.VenueStatusMaintenance, venues[0].Status)
	assert.Equal(t, 1, env.backend.count("GET /venues"))

	status, res = env.do(t, http.MethodPatch, "/api/v1/venues/v1/status", map[string]string{"status": "closed"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
}

func TestServer_CreateUnavailabilityRefetchesList(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodGet, "/api/v1/venues/v1/unavailabilities", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, env.backend.count("GET /venues/v1/unavailabilities"))

	status, _ = env.do(t, http.MethodPost, "/api/v1/venues/v1/unavailabilities", map[string]interface{}{
		"start_datetime": "2026-03-01T10:00:00+02:00",
		"end_datetime":   "2026-03-01T12:00:00+02:00",
		"reason":         "  Maintenance  ",
	})
	require.Equal(t, http.StatusCreated, status)

	sent := env.backend.body("POST /venues/v1/unavailabilities")
	assert.Equal(t, "2026-03-01T08:00:00Z", sent["start_datetime"])
	assert.Equal(t, "Maintenance", sent["reason"])

	status, res = env.do(t, http.MethodGet, "/api/v1/venues/v1/unavailabilities", nil)
	require.Equal(t, http.StatusOK, status)
	var list []domain.VenueUnavailability
	require.NoError(t, json.Unmarshal(res.Data, &list))
	assert.Len(t, list, 1)
	assert.Equal(t, 2, env.backend.count("GET /venues/v1/unavailabilities"))
}

func TestServer_Stats(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodGet, "/api/v1/venues/stats", nil)
	require.Equal(t, http.StatusOK, status)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Data, &stats))
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(1), stats["indoor"])
	assert.Equal(t, 4.5, stats["average_rating"])

	status, res = env.do(t, http.MethodGet, "/api/v1/users/stats", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(res.Data, &stats))
	assert.Equal(t, float64(1), stats["active"])
}

func TestServer_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("backend not found", func(t *testing.T) {
		status, res := env.do(t, http.MethodGet, "/api/v1/venues/missing", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, res.Error)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		status, res := env.do(t, http.MethodPost, "/api/v1/users", "{not json")
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, res.Error)
		assert.Equal(t, "INVALID_REQUEST", res.Error.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		status, res := env.do(t, http.MethodGet, "/api/v1/nope", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, res.Error)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})
}

func TestServer_ForwardsAuthorization(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/v1/users", nil, "Authorization", "Bearer admin-token")
	require.Equal(t, http.StatusOK, status)

	env.backend.mu.Lock()
	defer env.backend.mu.Unlock()
	assert.Equal(t, "Bearer admin-token", env.backend.lastAuth)
}

func TestServer_Health(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := env.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var health handler.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", health.Status)
	assert.Empty(t, health.Redis)
}

func TestServer_Metrics(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/v1/venues/v1", nil)
	require.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := env.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "venue_admin_query_cache_misses_total 1")
	assert.Contains(t, string(raw), `route="/api/v1/venues/:id"`)
}
