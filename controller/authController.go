package controller

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/duacyd/analitica/config"
	customerrors "github.com/duacyd/analitica/customErrors"
	"github.com/duacyd/analitica/dto"
	"github.com/duacyd/analitica/middleware"
	"github.com/duacyd/analitica/service"
)

type AuthController struct {
	authService service.AuthService
	tokens      config.Token
}

func NewAuthController(authService service.AuthService, tokens config.Token) *AuthController {
	return &AuthController{authService: authService, tokens: tokens}
}

// Root sends the browser to the dashboard or the login form depending
// on session state.
func (c *AuthController) Root(w http.ResponseWriter, r *http.Request) error {
	if c.authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return nil
	}
	http.Redirect(w, r, "/login", http.StatusFound)
	return nil
}

func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) error {
	if c.authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return nil
	}

	data := map[string]any{
		"titulo":   "Acceso",
		"username": "",
	}
	if r.URL.Query().Get("aviso") == "sesion-cerrada" {
		data["aviso"] = "Sesión cerrada correctamente."
	}
	return render(w, r, "login", data)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return customerrors.ErrBadRequest
	}

	req := dto.LoginRequestFromForm(r)
	if err := req.Validate(); err != nil {
		return c.rejectLogin(w, r, req.Username, customerrors.ErrMissingCredentials)
	}

	user, err := c.authService.Login(r.Context(), req.Username, req.Password)
	switch err {
	case nil:
	case customerrors.ErrMissingCredentials, customerrors.ErrInvalidCredentials:
		return c.rejectLogin(w, r, req.Username, err)
	default:
		return err
	}

	token, err := c.tokens.GenerateSession(user)
	if err != nil {
		return errors.Wrap(err, "issue session")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.SessionLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	middleware.LoggerFrom(r).WithField("username", user.Username).Info("login successful")

	http.Redirect(w, r, "/dashboard", http.StatusFound)
	return nil
}

// rejectLogin re-renders the form with the generic message for the
// failure class. Always HTTP 200, never a redirect.
func (c *AuthController) rejectLogin(w http.ResponseWriter, r *http.Request, username string, cause error) error {
	middleware.LoggerFrom(r).WithField("reason", customerrors.GetStatus(cause)).Info("login rejected")

	return render(w, r, "login", map[string]any{
		"titulo":   "Acceso",
		"username": username,
		"error":    customerrors.GetMessage(cause),
	})
}

// Logout clears the session cookie. Idempotent: an anonymous call still
// redirects to the login page with the confirmation notice.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login?aviso=sesion-cerrada", http.StatusFound)
	return nil
}

func (c *AuthController) Dashboard(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, "dashboard", map[string]any{
		"titulo": "Menú principal",
		"icono":  "grid-1x2",
	})
}

func (c *AuthController) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(config.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = c.tokens.ValidateSession(cookie.Value)
	return err == nil
}
