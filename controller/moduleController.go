package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/duacyd/analitica/templates"
)

// suayedCarreras lists the careers shown on the SUAyED submenu. Slugs
// double as path segments for the per-career sub-pages.
var suayedCarreras = []string{"derecho", "psicologia", "ciencias-politicas"}

// ModuleController serves the placeholder module pages. All of them are
// pure functions of path and query parameters; the analytics dashboards
// behind them are not built yet.
type ModuleController struct{}

func NewModuleController() *ModuleController {
	return &ModuleController{}
}

func (c *ModuleController) SuayedMenu(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "suayed_menu", map[string]any{
		"titulo":   "SUAyED",
		"icono":    "mortarboard",
		"carreras": suayedCarreras,
		"periodo":  r.URL.Query().Get("periodo"),
	})
}

func (c *ModuleController) SuayedIndicadores(w http.ResponseWriter, r *http.Request) error {
	return c.suayedSeccion(w, r, "Indicadores", "Vista de indicadores en construcción.")
}

func (c *ModuleController) SuayedCohortes(w http.ResponseWriter, r *http.Request) error {
	return c.suayedSeccion(w, r, "Cohortes", "Vista de cohortes en construcción.")
}

func (c *ModuleController) SuayedReportes(w http.ResponseWriter, r *http.Request) error {
	return c.suayedSeccion(w, r, "Reportes", "Generación y descarga de reportes en construcción.")
}

func (c *ModuleController) suayedSeccion(w http.ResponseWriter, r *http.Request, seccion, descripcion string) error {
	carrera := mux.Vars(r)["carrera"]
	titulo := fmt.Sprintf("%s — %s (SUAyED)", seccion, templates.TitleFromSlug(carrera))

	data := map[string]any{
		"titulo":   titulo,
		"parrafos": []string{descripcion},
	}
	if periodo := r.URL.Query().Get("periodo"); periodo != "" {
		data["periodo"] = periodo
	}
	return render(w, r, "simple", data)
}

func (c *ModuleController) Edco(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "module", map[string]any{
		"titulo":      "Educación Continua (EDCO)",
		"subtitulo":   "Cursos, microcursos y diplomados",
		"descripcion": "Visualiza oferta, inscripciones, satisfacción, ingresos y trazabilidad por periodo.",
		"icono":       "bar-chart-line",
		"modulo":      "edco",
	})
}

func (c *ModuleController) Cle(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "module", map[string]any{
		"titulo":      "Centro de Lenguas (CLE)",
		"subtitulo":   "Idiomas y certificaciones",
		"descripcion": "Consulta inscritos por idioma y nivel, aprobaciones, deserción y resultados de exámenes.",
		"icono":       "translate",
		"modulo":      "cle",
	})
}

func (c *ModuleController) Ayuda(w http.ResponseWriter, r *http.Request) error {
	modulo := strings.ToUpper(mux.Vars(r)["modulo"])

	return render(w, r, "simple", map[string]any{
		"titulo": "Ayuda del módulo",
		"parrafos": []string{
			fmt.Sprintf("Esta sección de ayuda describe el uso del módulo %s.", modulo),
		},
		"lista": []string{
			"Navega por periodos y filtros en la parte superior.",
			"Descarga reportes en CSV/XLSX desde el panel correspondiente.",
			"La ingesta de datos se realiza desde el menú principal → Plantillas / Ingesta.",
		},
	})
}

func (c *ModuleController) IngestaDatos(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "simple", map[string]any{
		"titulo": "Ingesta de datos",
		"parrafos": []string{
			"Aquí podrás cargar datasets (CSV/XLSX) para alimentar los tableros.",
			"Próximamente: validaciones, vistas previas y bitácora de cargas.",
		},
	})
}

func (c *ModuleController) RolesPermisos(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "simple", map[string]any{
		"titulo": "Roles y permisos",
		"parrafos": []string{
			"Configura quién puede ver, subir y editar información.",
			"Próximamente: administración de roles, permisos y auditoría.",
		},
	})
}

func (c *ModuleController) PlantillasDatos(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "simple", map[string]any{
		"titulo": "Plantillas de datos",
		"parrafos": []string{
			"Descarga formatos y ejemplos para preparar tus archivos de carga.",
		},
		"lista": []string{
			"Plantilla SUAyED (CSV/XLSX)",
			"Plantilla EDCO (CSV/XLSX)",
			"Plantilla CLE (CSV/XLSX)",
		},
	})
}

// NotFound serves the 404 page for unmatched paths, gated or not.
func (c *ModuleController) NotFound(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	return render(w, r, "error", map[string]any{
		"titulo":  "No encontrado",
		"codigo":  http.StatusNotFound,
		"mensaje": "La ruta solicitada no existe.",
	})
}
