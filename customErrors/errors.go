package customerrors

import "fmt"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Ambas fallas de login comparten mensajes genéricos: el formulario nunca
// revela cuál campo falló ni si el usuario existe.
var (
	ErrMissingCredentials = &Error{Code: 400, Message: "Completa usuario y contraseña."}
	ErrInvalidCredentials = &Error{Code: 401, Message: "Usuario o contraseña inválidos."}
	ErrUserNotFound       = &Error{Code: 404, Message: "Usuario o contraseña inválidos."}
	ErrBadRequest         = &Error{Code: 400, Message: "bad request"}
	ErrInternalServer     = &Error{Code: 500, Message: "internal server error"}
)

func GetStatus(err error) int {
	if customErr, ok := err.(*Error); ok {
		return customErr.Code
	}
	return 500
}

func GetMessage(err error) string {
	if customErr, ok := err.(*Error); ok {
		return customErr.Message
	}
	return err.Error()
}
