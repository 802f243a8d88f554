package dto

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginRequestFromForm trims both fields so whitespace-only input fails
// the required rule just like an empty submission.
func LoginRequestFromForm(r *http.Request) LoginRequest {
	return LoginRequest{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: strings.TrimSpace(r.FormValue("password")),
	}
}

func (l *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
