package middleware

import (
	"net/http"

	customerrors "github.com/duacyd/analitica/customErrors"
	"github.com/duacyd/analitica/templates"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler adapts error-returning handlers to http.HandlerFunc.
// Returned errors and panics are logged server-side and rendered as a
// generic error page; internals never reach the browser.
func ErrorHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(r).WithField("panic", rec).Error("handler panic")
				renderErrorPage(w, http.StatusInternalServerError)
			}
		}()

		if err := h(w, r); err != nil {
			LoggerFrom(r).WithError(err).Error("request failed")
			renderErrorPage(w, customerrors.GetStatus(err))
		}
	}
}

func renderErrorPage(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	titulo, mensaje := "Error interno", "Ocurrió un error inesperado."
	if status >= 400 && status < 500 {
		titulo, mensaje = "Solicitud incorrecta", "No se pudo procesar la solicitud."
	}

	templates.Pages.ExecuteTemplate(w, "error", map[string]any{
		"codigo":  status,
		"titulo":  titulo,
		"mensaje": mensaje,
	})
}
