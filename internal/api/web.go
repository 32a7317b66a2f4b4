package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

// registerWebRoutes serves a built web UI from webDir. Unknown paths fall
// back to index.html so client side routes survive a reload.
func (h *Handlers) registerWebRoutes(r *mux.Router) {
	if h.webDir == "" {
		r.HandleFunc("/", h.serveLanding).Methods("GET")
		return
	}

	r.PathPrefix("/").HandlerFunc(h.serveWebUI).Methods("GET")
}

func (h *Handlers) serveWebUI(w http.ResponseWriter, r *http.Request) {
	clean := filepath.Clean("/" + r.URL.Path)
	path := filepath.Join(h.webDir, clean)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.webDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

// serveLanding is shown when no web UI directory is configured.
func (h *Handlers) serveLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(strings.TrimSpace(`
<!DOCTYPE html>
<html>
<head>
    <title>rclone rc gateway</title>
    <style>
        body { font-family: sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        .links a { display: inline-block; margin-right: 20px; padding: 10px 15px; background: #007bff; color: white; text-decoration: none; border-radius: 5px; }
    </style>
</head>
<body>
    <h1>rclone rc gateway</h1>
    <p>No web UI directory configured (server.web_dir). The API is available under /api/v1.</p>
    <div class="links">
        <a href="/api/v1/health">Health Check</a>
        <a href="/api/v1/stats">Stats</a>
        <a href="/api/v1/remotes">Remotes</a>
    </div>
</body>
</html>
`)))
}
