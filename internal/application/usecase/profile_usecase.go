package usecase

import (
	"context"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// ProfileUseCase identidad visible del actor: roles y capacidad de inserción.
type ProfileUseCase struct {
	roles repository.UserRoleRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(roles repository.UserRoleRepository) *ProfileUseCase {
	return &ProfileUseCase{roles: roles}
}

// Me devuelve el perfil del usuario autenticado. Un usuario sin filas en
// user_roles es un viewer implícito.
func (uc *ProfileUseCase) Me(ctx context.Context, userID, email string) (*dto.MeResponse, error) {
	roles, err := uc.roles.RolesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{entity.RoleViewer}
	}
	return &dto.MeResponse{
		UserID:    userID,
		Email:     email,
		Roles:     roles,
		CanInsert: entity.CanInsert(roles),
	}, nil
}
