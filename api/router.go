package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/duacyd/analitica/config"
	"github.com/duacyd/analitica/controller"
	"github.com/duacyd/analitica/middleware"
)

// SetupRoutes builds the route table. Protected routes sit behind the
// session gate; unmatched paths fall through to the 404 page whether a
// session exists or not.
func SetupRoutes(
	log *logrus.Logger,
	tokens config.Token,
	auth *controller.AuthController,
	modules *controller.ModuleController,
) *mux.Router {
	router := mux.NewRouter()

	public := func(h middleware.HandlerFunc) http.Handler {
		return middleware.ErrorHandler(
			middleware.TrustProxyMiddleware(
				middleware.LoggingMiddleware(log)(h),
			),
		)
	}
	protected := func(h middleware.HandlerFunc) http.Handler {
		return public(middleware.RequireSession(tokens)(h))
	}

	router.Handle("/", public(auth.Root)).Methods(http.MethodGet)
	router.Handle("/login", public(auth.LoginForm)).Methods(http.MethodGet)
	router.Handle("/login", public(auth.Login)).Methods(http.MethodPost)
	// Outside the gate so an anonymous logout still lands on /login.
	router.Handle("/logout", public(auth.Logout)).Methods(http.MethodGet)

	router.Handle("/dashboard", protected(auth.Dashboard)).Methods(http.MethodGet)

	router.Handle("/modulo/suayed", protected(modules.SuayedMenu)).Methods(http.MethodGet)
	router.Handle("/modulo/suayed/{carrera}/indicadores", protected(modules.SuayedIndicadores)).Methods(http.MethodGet)
	router.Handle("/modulo/suayed/{carrera}/cohortes", protected(modules.SuayedCohortes)).Methods(http.MethodGet)
	router.Handle("/modulo/suayed/{carrera}/reportes", protected(modules.SuayedReportes)).Methods(http.MethodGet)
	router.Handle("/modulo/edco", protected(modules.Edco)).Methods(http.MethodGet)
	router.Handle("/modulo/cle", protected(modules.Cle)).Methods(http.MethodGet)

	router.Handle("/ayuda/{modulo}", protected(modules.Ayuda)).Methods(http.MethodGet)
	router.Handle("/ingesta-datos", protected(modules.IngestaDatos)).Methods(http.MethodGet)
	router.Handle("/roles-permisos", protected(modules.RolesPermisos)).Methods(http.MethodGet)
	router.Handle("/plantillas-datos", protected(modules.PlantillasDatos)).Methods(http.MethodGet)

	router.NotFoundHandler = public(modules.NotFound)

	return router
}
