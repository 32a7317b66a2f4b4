package api

import (
	"log/slog"
	"net/http"
	"time"

	"rcwebui/internal/monitor"
)

// Version is reported by the health endpoint; set at build time.
var Version = "dev"

var startTime = time.Now()

// minFreeBytes is the free space below which settings writes are at risk.
const minFreeBytes = 64 << 20

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
		"version":   Version,
		"rclone":    "reachable",
	}

	if h.dataDir != "" {
		if disk, err := monitor.DiskUsage(h.dataDir); err != nil {
			slog.Warn("failed to check data directory", "path", h.dataDir, "error", err)
		} else {
			health["disk"] = disk
			if disk.LowSpace(minFreeBytes) {
				health["status"] = "degraded"
			}
		}
	}

	if err := h.rc.Ping(r.Context()); err != nil {
		health["status"] = "degraded"
		health["rclone"] = "unreachable"
		health["rclone_error"] = err.Error()
		h.writeSuccess(w, http.StatusOK, health, "rclone daemon is not reachable")
		return
	}

	if health["status"] != "healthy" {
		h.writeSuccess(w, http.StatusOK, health, "Low disk space for settings")
		return
	}
	h.writeSuccess(w, http.StatusOK, health, "Service is healthy")
}

func (h *Handlers) GetVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.rc.GetRcloneVersion(r.Context())
	if err != nil {
		h.writeRCError(w, "Failed to get rclone version", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, map[string]interface{}{
		"service": Version,
		"rclone":  version,
	}, "")
}
