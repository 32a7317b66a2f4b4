package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rcwebui/internal/mocks"
	"rcwebui/internal/testutil"
	"rcwebui/pkg/rclone"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestHandlers(t *testing.T) (*Handlers, *mocks.MockRCClient) {
	mockRC := mocks.NewMockRCClient(t)
	store := testutil.SetupTestStore(t)

	handlers := NewHandlers(mockRC, store, rclone.StaticEndpoint{URL: "http://localhost:5572"}, "")
	return handlers, mockRC
}

func setupTestRouter(t *testing.T) (*mux.Router, *Handlers, *mocks.MockRCClient) {
	handlers, mockRC := setupTestHandlers(t)
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	return router, handlers, mockRC
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response
}

func TestNewHandlers(t *testing.T) {
	mockRC := mocks.NewMockRCClient(t)
	store := testutil.SetupTestStore(t)
	endpoint := rclone.StaticEndpoint{URL: "http://rc"}

	handlers := NewHandlers(mockRC, store, endpoint, "/srv/ui")

	assert.NotNil(t, handlers)
	assert.Equal(t, mockRC, handlers.rc)
	assert.Equal(t, store, handlers.settings)
	assert.Equal(t, endpoint, handlers.endpoint)
	assert.Equal(t, "/srv/ui", handlers.webDir)
}

func TestWriteSuccess(t *testing.T) {
	h, _ := setupTestHandlers(t)
	w := httptest.NewRecorder()

	h.writeSuccess(w, 200, map[string]string{"key": "value"}, "Operation successful")

	assert.Equal(t, 200, w.Code)
	response := decodeResponse(t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "Operation successful", response.Message)

	dataMap, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteError(t *testing.T) {
	h, _ := setupTestHandlers(t)
	w := httptest.NewRecorder()

	h.writeError(w, 400, "Invalid request", errors.New("validation failed"))

	assert.Equal(t, 400, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid request", response.Error)
	assert.Nil(t, response.Data)
}

func TestWriteRCError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedRC     int
	}{
		{
			name:           "invalid argument",
			err:            fmt.Errorf("%w: fs is required", rclone.ErrInvalidArgument),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid argument: fs is required",
		},
		{
			name:           "no endpoint",
			err:            fmt.Errorf("failed to resolve rc endpoint: %w", rclone.ErrNoEndpoint),
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "rclone endpoint not configured",
		},
		{
			name:           "backend error with rclone body",
			err:            &rclone.HTTPError{StatusCode: 500, Body: []byte(`{"error":"directory not found"}`)},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed: directory not found",
			expectedRC:     500,
		},
		{
			name:           "backend error with plain body",
			err:            &rclone.HTTPError{StatusCode: 401, Body: []byte("Unauthorized")},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed: Unauthorized",
			expectedRC:     401,
		},
		{
			name:           "transport error",
			err:            errors.New("request failed: connection refused"),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t)
			w := httptest.NewRecorder()

			h.writeRCError(w, "Failed", tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedError, response.Error)
			assert.Equal(t, tt.expectedRC, response.RCStatus)
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/stats"},
		{"GET", "/api/v1/stats/transferred"},
		{"GET", "/api/v1/bwlimit"},
		{"PUT", "/api/v1/bwlimit"},
		{"GET", "/api/v1/providers"},
		{"GET", "/api/v1/config/dump"},
		{"GET", "/api/v1/remotes"},
		{"GET", "/api/v1/remotes/gdrive"},
		{"GET", "/api/v1/fsinfo"},
		{"POST", "/api/v1/list"},
		{"POST", "/api/v1/publiclink"},
		{"GET", "/api/v1/download-url"},
		{"POST", "/api/v1/operations/purge"},
		{"POST", "/api/v1/operations/deletefile"},
		{"POST", "/api/v1/operations/cleanup"},
		{"GET", "/api/v1/jobs"},
		{"GET", "/api/v1/jobs/12"},
		{"POST", "/api/v1/jobs/12/stop"},
		{"POST", "/api/v1/backend/command"},
		{"POST", "/api/v1/core/command"},
		{"GET", "/api/v1/settings"},
		{"PUT", "/api/v1/settings"},
		{"DELETE", "/api/v1/settings"},
		{"GET", "/api/v1/health"},
		{"GET", "/api/v1/version"},
		{"GET", "/"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			var match mux.RouteMatch
			assert.True(t, router.Match(req, &match), "no route for %s %s", route.method, route.path)
		})
	}
}

func TestMiddlewareAppliedToAPI(t *testing.T) {
	router, _, mockRC := setupTestRouter(t)

	mockRC.On("GetAllRemoteNames", mock.Anything).
		Return(&rclone.RemoteNames{Remotes: []string{"gdrive"}}, nil).
		Once()

	req := httptest.NewRequest("GET", "/api/v1/remotes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
