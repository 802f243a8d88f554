package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	customerrors "github.com/duacyd/analitica/customErrors"
	"github.com/duacyd/analitica/models"
)

// Demo identity, active only when no external store is reachable.
const (
	demoUsername    = "admin"
	demoPassword    = "admin_duacyd"
	demoDisplayName = "Administración DUACyD"
	demoRole        = "admin"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type UserRepositoryImpl struct {
	db   *sql.DB // nil when running in demo mode
	demo models.User
	log  *logrus.Logger
}

func NewUserRepository(db *sql.DB, log *logrus.Logger) UserRepository {
	// bcrypt.DefaultCost is always in range, so the hash cannot fail.
	hash, _ := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)

	return &UserRepositoryImpl{
		db: db,
		demo: models.User{
			ID:           1,
			Username:     demoUsername,
			PasswordHash: string(hash),
			DisplayName:  demoDisplayName,
			Role:         demoRole,
		},
		log: log,
	}
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if r.db == nil {
		return r.demoLookup(username)
	}

	// The SELECT resolves the display name itself: rows with no captured
	// nombre/apellidos fall back to the correo instead of scanning NULL.
	var user models.User
	query := `
        SELECT
            u.id_usuario,
            u.correo,
            u.password_hash,
            COALESCE(NULLIF(TRIM(COALESCE(u.nombre, '') || ' ' || COALESCE(u.apellidos, '')), ''), u.correo) AS nombre,
            COALESCE(r.nombre, 'usuario') AS rol
        FROM usuario u
        LEFT JOIN usuario_rol ur ON ur.id_usuario = u.id_usuario
        LEFT JOIN rol r ON r.id_rol = ur.id_rol
        WHERE u.correo = $1
    `

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customerrors.ErrUserNotFound
		}
		// Fail closed: query faults are logged server-side and surface
		// to the caller as an absent user, never as internals.
		r.log.WithError(errors.Wrap(err, "query usuario")).Error("user lookup failed")
		return nil, customerrors.ErrUserNotFound
	}

	return &user, nil
}

// demoLookup matches the fixed demo identity by exact, case-sensitive
// username comparison.
func (r *UserRepositoryImpl) demoLookup(username string) (*models.User, error) {
	if username != r.demo.Username {
		return nil, customerrors.ErrUserNotFound
	}
	user := r.demo
	return &user, nil
}
