package repository

import "context"

// UserRoleRepository puerto de lectura de membresías de rol (user_roles).
// Los roles los administra el proveedor de identidad externo.
type UserRoleRepository interface {
	RolesForUser(ctx context.Context, userID string) ([]string, error)
}
