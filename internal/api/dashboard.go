// internal/api/dashboard.go
package api

import (
	_ "embed"
	"html/template"
	"net/http"

	"magnet-factory/internal/models"
	"magnet-factory/pkg/catalog"
)

//go:embed dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

type endpoint struct {
	Method string
	Path   string
	Note   string
}

var endpoints = []endpoint{
	{"GET", "/health", "estado del servicio y proveedores IA"},
	{"POST", "/generate", "ejecuta una ruta completa"},
	{"POST", "/api/runs", "ejecuta una ruta en segundo plano"},
	{"GET", "/api/runs/{id}", "estado y resultado de un run"},
	{"GET", "/api/status", "último run"},
	{"GET", "/api/trends", "temas en tendencia"},
	{"POST", "/api/research", "investiga un tema"},
	{"GET", "/api/formats", "catálogo de formatos"},
	{"POST", "/api/distribution/{kind}", "copy adicional: carousel-intro, dm, email-sequence, landing"},
	{"POST", "/api/visuals/carousel", "visuales de un carrusel"},
	{"POST", "/api/providers/refresh", "recarga credenciales IA"},
	{"GET", "/metrics", "métricas Prometheus"},
}

type dashboardData struct {
	Version   string
	AIStatus  models.ProviderStatus
	Routes    []models.Route
	Formats   []catalog.Format
	Endpoints []endpoint
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := dashboardTmpl.Execute(w, dashboardData{
		Version:   s.cfg.App.Version,
		AIStatus:  s.deps.Providers.Status(),
		Routes:    models.AllRoutes,
		Formats:   s.deps.Catalog.Formats,
		Endpoints: endpoints,
	})
	if err != nil {
		s.logger.Error("dashboard render failed", map[string]interface{}{"error": err.Error()})
	}
}
