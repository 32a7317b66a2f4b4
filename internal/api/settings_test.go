package api

import (
	"net/http"
	"testing"

	"rcwebui/internal/mocks"
	"rcwebui/internal/settings"
	"rcwebui/internal/testutil"
	"rcwebui/pkg/rclone"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsRouter(t *testing.T) (*mux.Router, *settings.Store) {
	store := testutil.SetupTestStore(t)
	handlers := NewHandlers(mocks.NewMockRCClient(t), store, store, "")
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	return router, store
}

func TestSaveSettings_AuthKey(t *testing.T) {
	router, store := setupSettingsRouter(t)

	rec := serve(router, "PUT", "/api/v1/settings", `{"ip_address":"http://localhost:5572","auth_key":"dXNlcjpwYXNz"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	response := decodeResponse(t, rec)
	assert.Equal(t, "Settings saved", response.Message)

	ep, err := store.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, rclone.Endpoint{URL: "http://localhost:5572", AuthKey: "dXNlcjpwYXNz"}, ep)
}

func TestSaveSettings_UserPassword(t *testing.T) {
	router, store := setupSettingsRouter(t)

	rec := serve(router, "PUT", "/api/v1/settings", `{"ip_address":"http://rc:5572","user":"admin","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	ep, err := store.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, settings.EncodeAuthKey("admin", "secret"), ep.AuthKey)
}

func TestSaveSettings_Validation(t *testing.T) {
	router, _ := setupSettingsRouter(t)

	rec := serve(router, "PUT", "/api/v1/settings", `{"auth_key":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ip_address is required", decodeResponse(t, rec).Error)

	rec = serve(router, "PUT", "/api/v1/settings", `{"ip_address":"http://rc","auth_key":"abc","user":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, "PUT", "/api/v1/settings", `nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSettings_HidesAuthKey(t *testing.T) {
	router, store := setupSettingsRouter(t)
	require.NoError(t, store.SaveLogin("http://rc:5572", "c2VjcmV0"))
	require.NoError(t, store.Set("theme", "dark"))

	rec := serve(router, "GET", "/api/v1/settings", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "c2VjcmV0")

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, "http://rc:5572", data["ip_address"])
	assert.Equal(t, true, data["has_auth_key"])
	assert.Equal(t, map[string]interface{}{"theme": "dark"}, data["other"])
}

func TestClearSettings(t *testing.T) {
	router, store := setupSettingsRouter(t)
	require.NoError(t, store.SaveLogin("http://rc:5572", "a2V5"))

	rec := serve(router, "DELETE", "/api/v1/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := store.RCEndpoint()
	assert.ErrorIs(t, err, settings.ErrNotConfigured)
}

func TestSettings_NoStore(t *testing.T) {
	handlers := NewHandlers(mocks.NewMockRCClient(t), nil, nil, "")
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		rec := serve(router, method, "/api/v1/settings", `{"ip_address":"http://rc"}`)
		assert.Equal(t, http.StatusNotImplemented, rec.Code, method)
	}
}
