package router

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// staticHandler sirve el build del formulario y cae a index.html para rutas del SPA.
// /api/* nunca llega acá: lo atiende el subrouter de orders.
func staticHandler(dir string) http.HandlerFunc {
	dir = strings.TrimSpace(dir)
	files := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			notFoundJSON(w)
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		full := filepath.Join(dir, filepath.FromSlash(clean))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			notFoundJSON(w)
			return
		}
		http.ServeFile(w, r, index)
	}
}

func notFoundJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
}
