package api

import (
	"net/http"

	"rcwebui/internal/settings"
)

type SaveSettingsRequest struct {
	IPAddress string `json:"ip_address"`
	AuthKey   string `json:"auth_key,omitempty"`
	User      string `json:"user,omitempty"`
	Password  string `json:"password,omitempty"`
}

// SettingsResponse never carries the auth key itself.
type SettingsResponse struct {
	IPAddress  string            `json:"ip_address"`
	HasAuthKey bool              `json:"has_auth_key"`
	Other      map[string]string `json:"other,omitempty"`
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	if h.settings == nil {
		h.writeError(w, http.StatusNotImplemented, "settings store not available", nil)
		return
	}

	all, err := h.settings.All()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to read settings", err)
		return
	}

	resp := SettingsResponse{
		IPAddress:  all[settings.KeyIPAddress],
		HasAuthKey: all[settings.KeyAuthKey] != "",
	}
	delete(all, settings.KeyIPAddress)
	delete(all, settings.KeyAuthKey)
	if len(all) > 0 {
		resp.Other = all
	}

	h.writeSuccess(w, http.StatusOK, resp, "")
}

func (h *Handlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if h.settings == nil {
		h.writeError(w, http.StatusNotImplemented, "settings store not available", nil)
		return
	}

	var req SaveSettingsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}
	if req.IPAddress == "" {
		h.writeError(w, http.StatusBadRequest, "ip_address is required", nil)
		return
	}
	if req.AuthKey != "" && req.User != "" {
		h.writeError(w, http.StatusBadRequest, "auth_key and user are mutually exclusive", nil)
		return
	}

	authKey := req.AuthKey
	if req.User != "" {
		authKey = settings.EncodeAuthKey(req.User, req.Password)
	}

	if err := h.settings.SaveLogin(req.IPAddress, authKey); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, SettingsResponse{
		IPAddress:  req.IPAddress,
		HasAuthKey: authKey != "",
	}, "Settings saved")
}

func (h *Handlers) ClearSettings(w http.ResponseWriter, r *http.Request) {
	if h.settings == nil {
		h.writeError(w, http.StatusNotImplemented, "settings store not available", nil)
		return
	}

	if err := h.settings.ClearLogin(); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to clear settings", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, nil, "Settings cleared")
}
