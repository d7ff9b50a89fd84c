package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/framed-app/framed/internal/frame"
	"github.com/framed-app/framed/internal/locale"
	"github.com/framed-app/framed/internal/render"
)

const (
	maxUploadBytes  = 32 << 20
	maxUploadPixels = 25_000_000
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type templateResponse struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	GroupAware  bool              `json:"groupAware"`
	Defaults    map[string]string `json:"defaults"`
}

type statusResponse struct {
	Phase     string     `json:"phase"`
	RunID     string     `json:"runId,omitempty"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Device    string     `json:"device,omitempty"`
	Language  string     `json:"language,omitempty"`
	Error     string     `json:"error,omitempty"`
	Generated int        `json:"generated"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	Bytes     int64      `json:"bytes"`
	Previews  int        `json:"previews"`
	Warnings  []string   `json:"warnings"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/templates", handleTemplates)
	mux.HandleFunc("/render", func(w http.ResponseWriter, r *http.Request) { handleRender(w, r, deps) })
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	return mux
}

func handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	out := make([]templateResponse, 0, len(render.Variants()))
	for _, v := range render.Variants() {
		defaults := map[string]string{}
		for _, kv := range v.Defaults().Fields() {
			defaults[kv[0]] = kv[1]
		}
		out = append(out, templateResponse{
			Name:        v.String(),
			Description: v.Description(),
			GroupAware:  v.GroupAware(),
			Defaults:    defaults,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleRender accepts a multipart form with an optional "screenshot" file
// and the text and color fields of one screen, and answers with a PNG.
func handleRender(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_form", err.Error())
		return
	}

	req, err := previewRequestFromForm(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	img, err := deps.Previewer.Preview(r.Context(), req)
	if err != nil {
		status, code := previewErrorStatus(err)
		deps.Logger.Errorf("web", "preview failed: %v", err)
		writeAPIError(w, status, code, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="preview.png"`)
	w.WriteHeader(http.StatusOK)
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		deps.Logger.Errorf("web", "encode preview: %v", err)
	}
}

func previewRequestFromForm(r *http.Request) (PreviewRequest, error) {
	req := PreviewRequest{
		Template: r.FormValue("template"),
		Lang:     strings.TrimSpace(r.FormValue("lang")),
		Settings: render.Settings{
			BackgroundColor: strings.TrimSpace(r.FormValue("background_color")),
			TextColor:       strings.TrimSpace(r.FormValue("text_color")),
			SubtitleColor:   strings.TrimSpace(r.FormValue("subtitle_color")),
			AccentColor:     strings.TrimSpace(r.FormValue("accent_color")),
			QRCode:          strings.TrimSpace(r.FormValue("qr_code")),
		},
		Total: 1,
	}
	if title := r.FormValue("title"); title != "" {
		req.Settings.Title = locale.Plain(title)
	}
	if subtitle := r.FormValue("subtitle"); subtitle != "" {
		req.Settings.Subtitle = locale.Plain(subtitle)
	}

	var err error
	if raw := r.FormValue("index"); raw != "" {
		if req.Index, err = strconv.Atoi(raw); err != nil {
			return PreviewRequest{}, errors.New("index must be an integer")
		}
	}
	if raw := r.FormValue("total"); raw != "" {
		if req.Total, err = strconv.Atoi(raw); err != nil {
			return PreviewRequest{}, errors.New("total must be an integer")
		}
	}

	file, _, err := r.FormFile("screenshot")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return PreviewRequest{}, err
	default:
		defer file.Close()
		img, err := decodeUpload(file)
		if err != nil {
			return PreviewRequest{}, err
		}
		req.Screenshot = img
	}
	return req, nil
}

// decodeUpload reads the image header first so oversized dimensions are
// rejected before any pixel memory is allocated.
func decodeUpload(r io.ReadSeeker) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, errors.New("screenshot is not a decodable image")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxUploadPixels {
		return nil, fmt.Errorf("screenshot is %dx%d, limit is %d pixels", cfg.Width, cfg.Height, maxUploadPixels)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.New("screenshot is not a decodable image")
	}
	return img, nil
}

func previewErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, frame.ErrBezelTooSmall):
		return http.StatusUnprocessableEntity, "bezel_too_small"
	case errors.Is(err, render.ErrIndexRange):
		return http.StatusBadRequest, "index_out_of_range"
	case errors.Is(err, frame.ErrBezelMissing):
		return http.StatusServiceUnavailable, "bezel_missing"
	default:
		return http.StatusInternalServerError, "render_failed"
	}
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	snap := deps.Status.Snapshot()
	resp := statusResponse{
		Phase:     snap.Phase.String(),
		RunID:     snap.Run.ID,
		Device:    snap.Run.Device,
		Language:  snap.Run.Language,
		Error:     snap.Run.Err,
		Generated: snap.Counters.Generated,
		Skipped:   snap.Counters.Skipped,
		Failed:    snap.Counters.Failed,
		Bytes:     snap.Counters.Bytes,
		Previews:  snap.Previews,
		Warnings:  []string{},
	}
	if !snap.Run.StartedAt.IsZero() {
		resp.StartedAt = &snap.Run.StartedAt
	}
	if !snap.Run.EndedAt.IsZero() {
		resp.EndedAt = &snap.Run.EndedAt
	}
	for _, e := range deps.Warnings.Entries("WARN") {
		resp.Warnings = append(resp.Warnings, e.Component+": "+e.Message)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
