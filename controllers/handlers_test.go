package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAbukalaf/real-estate-reign/booking"
	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/models"
	"github.com/AbdullahAbukalaf/real-estate-reign/notify"
	"github.com/AbdullahAbukalaf/real-estate-reign/routes"
	"github.com/AbdullahAbukalaf/real-estate-reign/storage"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
)

func setupTestRouter(t *testing.T) (*mux.Router, routes.Deps) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	ctx := context.Background()
	kv := storage.NewMemoryKV()
	notifier := notify.NewLog(log)
	cat := catalog.Seed()

	deps := routes.Deps{
		Catalog:   cat,
		Favorites: store.NewFavorites(ctx, kv, notifier, log),
		Sessions:  store.NewSessions(ctx, kv, log),
		Submitter: booking.NewSimulatedSubmitter(0, notifier, log),
		Log:       log,
	}

	router := mux.NewRouter()
	routes.Routes(router, deps)
	return router, deps
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListProperties_FilterAndSort(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/properties", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []models.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 9)

	rec = doJSON(t, router, http.MethodGet, "/properties?type=house&sort=price-asc", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var houses []models.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&houses))
	require.Len(t, houses, 4)
	for i := range houses {
		assert.Equal(t, models.TypeHouse, houses[i].Type)
		if i > 0 {
			assert.LessOrEqual(t, houses[i-1].Price, houses[i].Price)
		}
	}
}

func TestListProperties_QuerySeeding(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/properties?location=Aspen&price=500000-1000000", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []models.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&results))
	require.Len(t, results, 1)
	assert.Equal(t, "Mountain View Cabin", results[0].Title)
}

func TestGetProperty_NotFoundCarriesRecoveryLink(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/properties/9999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload struct {
		Message  string `json:"message"`
		Listings string `json:"listings"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "/properties", payload.Listings)
	assert.NotEmpty(t, payload.Message)
}

func TestFavoritesEndToEnd(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/favorites", map[string]int{"propertyId": 4}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Adding again is a no-op, not a conflict.
	rec = doJSON(t, router, http.MethodPost, "/favorites", map[string]int{"propertyId": 4}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/favorites", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Data []models.Property `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, 4, listResp.Data[0].ID)
	assert.True(t, listResp.Data[0].IsFavorite)

	// The listing view reflects the flag.
	rec = doJSON(t, router, http.MethodGet, "/properties/4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.True(t, detail.IsFavorite)

	rec = doJSON(t, router, http.MethodDelete, "/favorites/4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/favorites/4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, "removing an absent id stays a no-op")
}

func TestAddFavorite_UnknownProperty(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/favorites", map[string]int{"propertyId": 123456}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginLogoutFlow(t *testing.T) {
	router, deps := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{"email": "a@b.com", "password": "whatever"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)
	assert.True(t, deps.Sessions.IsAuthenticated())

	authHeader := http.Header{"Authorization": []string{"Bearer " + loginResp.Token}}

	rec = doJSON(t, router, http.MethodGet, "/api/me", nil, authHeader)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/logout", nil, authHeader)
	require.Equal(t, http.StatusOK, rec.Code)

	var logoutResp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&logoutResp))
	assert.Equal(t, "/", logoutResp.Redirect, "logout points clients back to the landing view")
	assert.False(t, deps.Sessions.IsAuthenticated())
}

func TestLogin_MissingCredentials(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{"email": "", "password": "pw"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleViewing(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"date":  time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
		"time":  "02:00 PM",
		"name":  "Pat Example",
		"email": "pat@example.com",
		"phone": "(555) 000-1111",
	}

	rec := doJSON(t, router, http.MethodPost, "/properties/2/viewings", body, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Redirect string `json:"redirect"`
		Data     struct {
			ConfirmationID string `json:"confirmationId"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/properties/2", resp.Redirect)
	assert.NotEmpty(t, resp.Data.ConfirmationID)
}

func TestScheduleViewing_MissingDateFailsValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"time":  "02:00 PM",
		"name":  "Pat Example",
		"email": "pat@example.com",
		"phone": "(555) 000-1111",
	}

	rec := doJSON(t, router, http.MethodPost, "/properties/2/viewings", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Please fill all required fields", resp.Message)
}

func TestScheduleViewing_UnknownProperty(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/properties/777/viewings", map[string]string{}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleViewing_PrefillsFromSession(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{"email": "a@b.com", "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&loginResp))

	// No email in the payload: the session identity fills it in.
	body := map[string]interface{}{
		"date":  time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
		"time":  "09:00 AM",
		"name":  "Pat Example",
		"phone": "(555) 000-1111",
	}
	header := http.Header{"Authorization": []string{"Bearer " + loginResp.Token}}

	rec = doJSON(t, router, http.MethodPost, "/properties/6/viewings", body, header)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// Without the token the same payload fails validation.
	rec = doJSON(t, router, http.MethodPost, "/properties/6/viewings", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/contact", map[string]string{
		"name":    "Pat Example",
		"email":   "pat@example.com",
		"message": "Is the loft still available?",
	}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/contact", map[string]string{
		"name":  "Pat Example",
		"email": "pat@example.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAgents(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/agents", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var agents []models.Agent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&agents))
	require.Len(t, agents, 4)
	assert.Equal(t, "Jennifer Moore", agents[0].Name)
}
