package models

// User is a read-only record from the `usuario` table (or the demo
// identity when no external store is configured). The portal never
// writes users.
type User struct {
	ID           int64  `json:"id" db:"id_usuario"`
	Username     string `json:"username" db:"correo"`
	PasswordHash string `json:"-" db:"password_hash"`
	DisplayName  string `json:"nombre" db:"nombre"`
	Role         string `json:"rol" db:"rol"`
}
