package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"rcwebui/internal/interfaces"
	"rcwebui/pkg/rclone"

	"github.com/gorilla/mux"
)

type Handlers struct {
	rc       interfaces.RCClient
	settings interfaces.SettingsStore
	endpoint rclone.EndpointSource
	webDir   string
	dataDir  string
}

type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Message  string      `json:"message,omitempty"`
	RCStatus int         `json:"rc_status,omitempty"`
}

// NewHandlers wires the gateway. endpoint is the source the rc client uses; it
// supplies the daemon address for download links. settings may be nil.
func NewHandlers(rc interfaces.RCClient, settings interfaces.SettingsStore, endpoint rclone.EndpointSource, webDir string) *Handlers {
	return &Handlers{
		rc:       rc,
		settings: settings,
		endpoint: endpoint,
		webDir:   webDir,
	}
}

// SetDataDir makes the health check report free space of the filesystem
// holding the settings database.
func (h *Handlers) SetDataDir(dir string) {
	h.dataDir = dir
}

func (h *Handlers) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// Stats and bandwidth
	api.HandleFunc("/stats", h.GetStats).Methods("GET")
	api.HandleFunc("/stats/transferred", h.GetTransferredStats).Methods("GET")
	api.HandleFunc("/bwlimit", h.GetBandwidth).Methods("GET")
	api.HandleFunc("/bwlimit", h.SetBandwidth).Methods("PUT")

	// Configuration
	api.HandleFunc("/providers", h.GetProviders).Methods("GET")
	api.HandleFunc("/config/dump", h.GetConfigDump).Methods("GET")
	api.HandleFunc("/remotes", h.GetRemotes).Methods("GET")
	api.HandleFunc("/remotes/{name}", h.GetRemote).Methods("GET")
	api.HandleFunc("/fsinfo", h.GetFsInfo).Methods("GET")

	// Files
	api.HandleFunc("/list", h.ListFiles).Methods("POST")
	api.HandleFunc("/publiclink", h.CreatePublicLink).Methods("POST")
	api.HandleFunc("/download-url", h.GetDownloadURL).Methods("GET")
	api.HandleFunc("/operations/purge", h.PurgeDir).Methods("POST")
	api.HandleFunc("/operations/deletefile", h.DeleteFile).Methods("POST")
	api.HandleFunc("/operations/cleanup", h.CleanTrash).Methods("POST")

	// Jobs
	api.HandleFunc("/jobs", h.GetJobs).Methods("GET")
	api.HandleFunc("/jobs/{id:[0-9]+}", h.GetJob).Methods("GET")
	api.HandleFunc("/jobs/{id:[0-9]+}/stop", h.StopJob).Methods("POST")

	// Commands
	api.HandleFunc("/backend/command", h.BackendCommand).Methods("POST")
	api.HandleFunc("/core/command", h.CoreCommand).Methods("POST")

	// Settings
	api.HandleFunc("/settings", h.GetSettings).Methods("GET")
	api.HandleFunc("/settings", h.SaveSettings).Methods("PUT")
	api.HandleFunc("/settings", h.ClearSettings).Methods("DELETE")

	// System endpoints
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api.HandleFunc("/version", h.GetVersion).Methods("GET")

	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)

	// Web UI last so it does not shadow the API
	h.registerWebRoutes(r)
}

func (h *Handlers) writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, message string, err error) {
	h.writeErrorResponse(w, statusCode, APIResponse{Success: false, Error: message}, err)
}

func (h *Handlers) writeErrorResponse(w http.ResponseWriter, statusCode int, response APIResponse, err error) {
	w.WriteHeader(statusCode)

	if err != nil {
		slog.Error("API error", "message", response.Error, "error", err)
	} else {
		slog.Warn("API error", "message", response.Error)
	}

	if jsonErr := json.NewEncoder(w).Encode(response); jsonErr != nil {
		slog.Error("failed to encode error response", "error", jsonErr)
	}
}

// writeRCError maps an rc client error onto a gateway response.
func (h *Handlers) writeRCError(w http.ResponseWriter, message string, err error) {
	var httpErr *rclone.HTTPError
	switch {
	case errors.Is(err, rclone.ErrInvalidArgument):
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, rclone.ErrNoEndpoint):
		h.writeError(w, http.StatusServiceUnavailable, "rclone endpoint not configured", err)
	case errors.As(err, &httpErr):
		h.writeErrorResponse(w, http.StatusBadGateway, APIResponse{
			Success:  false,
			Error:    message + ": " + rcErrorMessage(httpErr),
			RCStatus: httpErr.StatusCode,
		}, err)
	default:
		h.writeError(w, http.StatusBadGateway, message, err)
	}
}

// rcErrorMessage extracts rclone's "error" field, falling back to the raw body.
func rcErrorMessage(e *rclone.HTTPError) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return string(e.Body)
}

func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
