package controller

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/duacyd/analitica/middleware"
	"github.com/duacyd/analitica/templates"
)

// render executes a page template with the session identity and current
// year merged into the payload.
func render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	merged := map[string]any{
		"anio": time.Now().Year(),
	}
	if claims := middleware.SessionFrom(r); claims != nil {
		merged["usuario_nombre"] = claims.DisplayName
		merged["usuario_rol"] = claims.Role
	}
	for k, v := range data {
		merged[k] = v
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Pages.ExecuteTemplate(w, name, merged); err != nil {
		return errors.Wrap(err, "render "+name)
	}
	return nil
}
