package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRoleRepo struct {
	roles map[string][]string
	err   error
}

func (f *fakeUserRoleRepo) RolesForUser(_ context.Context, userID string) ([]string, error) {
	return f.roles[userID], f.err
}

// Los roles salen de user_roles; can_insert refleja operator o admin.
func TestMe_RolesYCanInsert(t *testing.T) {
	uc := NewProfileUseCase(&fakeUserRoleRepo{roles: map[string][]string{
		"u-op":  {"operator"},
		"u-adm": {"admin", "operator"},
	}})

	me, err := uc.Me(context.Background(), "u-op", "op@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"operator"}, me.Roles)
	assert.True(t, me.CanInsert)
	assert.Equal(t, "op@example.com", me.Email)

	me, err = uc.Me(context.Background(), "u-adm", "adm@example.com")
	require.NoError(t, err)
	assert.True(t, me.CanInsert)
}

// Sin filas en user_roles: viewer implícito, sin permiso de inserción.
func TestMe_SinRolesEsViewer(t *testing.T) {
	uc := NewProfileUseCase(&fakeUserRoleRepo{})

	me, err := uc.Me(context.Background(), "u-nuevo", "nuovo@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"viewer"}, me.Roles)
	assert.False(t, me.CanInsert)
}

func TestMe_ErrorDelStore(t *testing.T) {
	storeErr := errors.New("timeout")
	uc := NewProfileUseCase(&fakeUserRoleRepo{err: storeErr})

	_, err := uc.Me(context.Background(), "u1", "e@example.com")
	assert.ErrorIs(t, err, storeErr)
}
