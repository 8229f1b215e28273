package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/blockedby/chartpage/internal/chart"
	"github.com/blockedby/chartpage/internal/logger"
	"github.com/blockedby/chartpage/internal/web"
)

// PagesHandler handles HTML page requests
type PagesHandler struct {
	templates *web.TemplateEngine
	provider  ChartDataProvider
	style     chart.Style
	fallback  bool
	log       *logger.Logger
}

// NewPagesHandler creates a new pages handler. When fallback is set the
// chart page carries a server-rendered image for browsers without scripts.
func NewPagesHandler(templates *web.TemplateEngine, provider ChartDataProvider, style chart.Style, fallback bool, log *logger.Logger) *PagesHandler {
	if log == nil {
		log = logger.Get()
	}
	return &PagesHandler{
		templates: templates,
		provider:  provider,
		style:     style,
		fallback:  fallback,
		log:       log,
	}
}

// Welcome renders the landing page
func (h *PagesHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Welcome",
	}

	h.render(w, "welcome", data)
}

// Chart renders the bar chart page
func (h *PagesHandler) Chart(w http.ResponseWriter, r *http.Request) {
	series, err := h.provider.ChartData(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("load chart data")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := series.Validate(); err != nil {
		h.log.Error().Err(err).Msg("invalid chart data")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":  h.style.Title,
		"Labels": series.Labels,
		"Values": series.Values,
		"Style":  h.style,
	}

	if h.fallback {
		img, err := chart.RenderPNG(series, h.style)
		if err != nil {
			// page still renders, only without the noscript image
			h.log.Warn().Err(err).Msg("render fallback image")
		} else {
			data["FallbackImage"] = template.URL(chart.PNGDataURI(img))
		}
	}

	h.render(w, "chart", data)
}

// render executes the page into a buffer so a template failure never
// leaves a half-written 200 response.
func (h *PagesHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, name, data); err != nil {
		h.log.Error().Err(err).Str("page", name).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug().Err(err).Str("page", name).Msg("client disconnected before page was written")
	}
}
