package api

import (
	"net/http"
	"strconv"
	"strings"

	"rcwebui/pkg/rclone"

	"github.com/gorilla/mux"
)

type FsRemoteRequest struct {
	Fs     string `json:"fs"`
	Remote string `json:"remote"`
}

type ListRequest struct {
	Fs     string        `json:"fs"`
	Remote string        `json:"remote"`
	Opt    rclone.Params `json:"opt,omitempty"`
}

type BandwidthRequest struct {
	Rate string `json:"rate"`
}

type BackendCommandRequest struct {
	Command string        `json:"command"`
	Arg     []string      `json:"arg"`
	Opt     rclone.Params `json:"opt"`
	Fs      string        `json:"fs,omitempty"`
}

type CoreCommandRequest struct {
	Arg []string      `json:"arg"`
	Opt rclone.Params `json:"opt"`
}

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rc.GetStats(r.Context(), r.URL.Query().Get("group"))
	if err != nil {
		h.writeRCError(w, "Failed to get stats", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, stats, "")
}

func (h *Handlers) GetTransferredStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rc.GetTransferredStats(r.Context(), r.URL.Query().Get("group"))
	if err != nil {
		h.writeRCError(w, "Failed to get transferred stats", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, stats, "")
}

func (h *Handlers) GetBandwidth(w http.ResponseWriter, r *http.Request) {
	limit, err := h.rc.GetCurrentBandwidthSetting(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to get bandwidth limit", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, limit, "")
}

func (h *Handlers) SetBandwidth(w http.ResponseWriter, r *http.Request) {
	var req BandwidthRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}
	if req.Rate == "" {
		h.writeError(w, http.StatusBadRequest, "rate is required", nil)
		return
	}

	limit, err := h.rc.SetCurrentBandwidthSetting(r.Context(), req.Rate)
	if err != nil {
		h.writeRCError(w, "Failed to set bandwidth limit", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, limit, "Bandwidth limit updated")
}

func (h *Handlers) GetProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.rc.GetAllProviders(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to get providers", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, providers, "")
}

func (h *Handlers) GetConfigDump(w http.ResponseWriter, r *http.Request) {
	dump, err := h.rc.GetAllConfigDump(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to dump config", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, dump, "")
}

func (h *Handlers) GetRemotes(w http.ResponseWriter, r *http.Request) {
	names, err := h.rc.GetAllRemoteNames(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to list remotes", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, names, "")
}

func (h *Handlers) GetRemote(w http.ResponseWriter, r *http.Request) {
	info, err := h.rc.GetRemoteInfo(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.writeRCError(w, "Failed to get remote info", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, info, "")
}

func (h *Handlers) GetFsInfo(w http.ResponseWriter, r *http.Request) {
	fs := r.URL.Query().Get("fs")
	if fs == "" {
		h.writeError(w, http.StatusBadRequest, "fs is required", nil)
		return
	}

	info, err := h.rc.GetFsInfo(r.Context(), fs)
	if err != nil {
		h.writeRCError(w, "Failed to get fs info", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, info, "")
}

func (h *Handlers) ListFiles(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	list, err := h.rc.GetFilesList(r.Context(), req.Fs, req.Remote, req.Opt)
	if err != nil {
		h.writeRCError(w, "Failed to list files", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, list, "")
}

func (h *Handlers) CreatePublicLink(w http.ResponseWriter, r *http.Request) {
	var req FsRemoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}
	if req.Fs == "" {
		h.writeError(w, http.StatusBadRequest, "fs is required", nil)
		return
	}

	link, err := h.rc.CreatePublicLink(r.Context(), req.Fs, req.Remote)
	if err != nil {
		h.writeRCError(w, "Failed to create public link", err)
		return
	}
	h.writeSuccess(w, http.StatusCreated, link, "Public link created")
}

// GetDownloadURL answers with the URL the daemon serves a file from.
// Query: fs (remote name), remote (directory path), name (file name).
func (h *Handlers) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fs, remote, name := query.Get("fs"), query.Get("remote"), query.Get("name")
	if fs == "" || name == "" {
		h.writeError(w, http.StatusBadRequest, "fs and name are required", nil)
		return
	}
	if h.endpoint == nil {
		h.writeError(w, http.StatusServiceUnavailable, "rclone endpoint not configured", nil)
		return
	}

	ep, err := h.endpoint.RCEndpoint()
	if err != nil {
		h.writeRCError(w, "Failed to resolve rc endpoint", err)
		return
	}

	info, err := h.rc.GetFsInfo(r.Context(), fs)
	if err != nil {
		h.writeRCError(w, "Failed to get fs info", err)
		return
	}

	base := strings.TrimRight(ep.URL, "/") + "/"
	url := rclone.GetDownloadURLForFile(base, info, fs, remote, rclone.Item{Name: name})
	h.writeSuccess(w, http.StatusOK, map[string]string{"url": url}, "")
}

func (h *Handlers) PurgeDir(w http.ResponseWriter, r *http.Request) {
	var req FsRemoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.rc.PurgeDir(r.Context(), req.Fs, req.Remote)
	if err != nil {
		h.writeRCError(w, "Failed to purge directory", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, resp, "Directory purged")
}

func (h *Handlers) DeleteFile(w http.ResponseWriter, r *http.Request) {
	var req FsRemoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.rc.DeleteFile(r.Context(), req.Fs, req.Remote)
	if err != nil {
		h.writeRCError(w, "Failed to delete file", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, resp, "File deleted")
}

func (h *Handlers) CleanTrash(w http.ResponseWriter, r *http.Request) {
	var req FsRemoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.rc.CleanTrashForRemote(r.Context(), req.Fs)
	if err != nil {
		h.writeRCError(w, "Failed to clean trash", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, resp, "Trash cleaned")
}

func (h *Handlers) GetJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.rc.ListJobs(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to list jobs", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, jobs, "")
}

func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseJobID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid job ID", err)
		return
	}

	status, err := h.rc.GetJobStatus(r.Context(), id)
	if err != nil {
		h.writeRCError(w, "Failed to get job status", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, status, "")
}

func (h *Handlers) StopJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseJobID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid job ID", err)
		return
	}

	if err := h.rc.StopJob(r.Context(), id); err != nil {
		h.writeRCError(w, "Failed to stop job", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, nil, "Job stopped")
}

func (h *Handlers) BackendCommand(w http.ResponseWriter, r *http.Request) {
	var req BackendCommandRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.rc.BackendCommand(r.Context(), req.Command, req.Arg, req.Opt, req.Fs)
	if err != nil {
		h.writeRCError(w, "Backend command failed", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, resp, "")
}

func (h *Handlers) CoreCommand(w http.ResponseWriter, r *http.Request) {
	var req CoreCommandRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.rc.CoreCommand(r.Context(), req.Arg, req.Opt)
	if err != nil {
		h.writeRCError(w, "Core command failed", err)
		return
	}
	h.writeSuccess(w, http.StatusOK, resp, "")
}

func parseJobID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
