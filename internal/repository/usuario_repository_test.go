package repository_test

import (
	"context"
	"testing"

	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"
	"asistencia-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsuarioRepository_FindByEmailIsExact(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	usuario, err := repo.FindByEmail(ctx, testutil.AdminEmail)
	require.NoError(t, err)
	require.NotNil(t, usuario.Rol)
	assert.Equal(t, model.RolAdministrador, usuario.Rol.Nombre)

	_, err = repo.FindByEmail(ctx, "ADMIN@test.cl")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByEmail(ctx, "nadie@test.cl")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsuarioRepository_FindByID(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	admin, err := repo.FindByEmail(ctx, testutil.AdminEmail)
	require.NoError(t, err)

	usuario, err := repo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.AdminEmail, usuario.Email)
	require.NotNil(t, usuario.Rol)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHealthRepository_Ping(t *testing.T) {
	db := testutil.NewDB(t)
	result, err := repository.NewHealthRepository(db).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}
