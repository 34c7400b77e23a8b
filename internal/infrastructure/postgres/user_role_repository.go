package postgres

import (
	"context"
	"fmt"

	"github.com/olionece/gestione-olio/internal/domain/repository"
)

var _ repository.UserRoleRepository = (*UserRoleRepo)(nil)

// UserRoleRepo lectura de membresías de rol (user_roles).
type UserRoleRepo struct {
	q Querier
}

// NewUserRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRoleRepository(q Querier) *UserRoleRepo {
	return &UserRoleRepo{q: q}
}

// RolesForUser devuelve los roles del usuario; vacío si no tiene ninguno.
func (r *UserRoleRepo) RolesForUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("roles for user: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
