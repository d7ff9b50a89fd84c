package web

import (
	"net/http"
	"os"
)

type APIV1Config struct {
	Deps APIV1Deps

	// OutputDir, when set to an existing directory, is served read-only
	// under /shots/ so rendered images can be browsed next to previews.
	OutputDir string
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg.Deps)))
}

// NewDefaultMux builds the mux served by `framed serve`.
func NewDefaultMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	if info, err := os.Stat(cfg.OutputDir); err == nil && info.IsDir() {
		mux.Handle("/shots/", http.StripPrefix("/shots/", http.FileServer(http.Dir(cfg.OutputDir))))
	}
	return mux
}
