package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transit-delay-service/internal/api/dto"
	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/services"
)

type memoryUserRepo struct {
	users map[string]domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]domain.User)}
}

func (m *memoryUserRepo) CreateUser(_ context.Context, user domain.User) error {
	if _, ok := m.users[user.Email]; ok {
		return fmt.Errorf("user %q already exists", user.Email)
	}
	m.users[user.Email] = user
	return nil
}

func (m *memoryUserRepo) FindUser(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type staticCatalog struct{}

func (staticCatalog) Routes() []string { return []string{"R1", "R2", "R3", "R4"} }

func (staticCatalog) AverageDelays() map[string]float64 {
	return map[string]float64{"R1": 4.2, "R2": 7.1}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	featurizer := &services.Featurizer{Logger: logger}
	predictor := services.NewPredictor(featurizer, nil, nil, logger, nil)

	return NewRouter(predictor, newMemoryUserRepo(), staticCatalog{}, nil, []string{"*"}, logger)
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPredictEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/predict", dto.PredictRequest{
		RouteID:       "R2",
		ScheduledTime: "08:00",
		Weather:       "rainy",
		DayType:       "weekday",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 14.5, res.Delay)
	assert.Equal(t, "High Delay", res.Status)
	assert.Equal(t, 50, res.Confidence)
	require.Len(t, res.Reasons, 2)
	assert.Equal(t, "طقس ممطر / Rainy Weather", res.Reasons[0].Factor)
	assert.Equal(t, "وقت الذروة / Peak Hour", res.Reasons[1].Factor)
}

func TestPredictEndpointEmptyBodyUsesDefaults(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	// Defaults: R1, 08:00 (peak), sunny.
	assert.Equal(t, 6.0, res.Delay)
	assert.Equal(t, "Moderate Delay", res.Status)
}

func TestPredictEndpointRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, []string{"R1", "R2", "R3", "R4"}, res.Routes)
	assert.Equal(t, 4.2, res.AverageDelayMinutes["R1"])
}

func TestAuthSignupAndLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/auth/signup", dto.AuthRequest{
		Email:    "Rider@Example.com",
		Password: "s3cret",
		Name:     "Rider",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var signup dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.True(t, signup.Success)
	require.NotNil(t, signup.User)
	assert.Equal(t, "rider@example.com", signup.User.Email)

	// Duplicate signup fails softly with HTTP 200.
	rec = postJSON(t, router, "/api/auth/signup", dto.AuthRequest{
		Email:    "rider@example.com",
		Password: "other",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var dup dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dup))
	assert.False(t, dup.Success)
	assert.NotEmpty(t, dup.Error)

	rec = postJSON(t, router, "/auth/login", dto.AuthRequest{
		Email:    "rider@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.True(t, login.Success)

	rec = postJSON(t, router, "/auth/login", dto.AuthRequest{
		Email:    "rider@example.com",
		Password: "wrong",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var bad dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bad))
	assert.False(t, bad.Success)
}

func TestAuthSignupRequiresCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/auth/signup", dto.AuthRequest{Email: "rider@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRootBanner(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "running", res["status"])
}
