package database_test

import (
	"testing"

	"asistencia-backend/internal/database"
	"asistencia-backend/internal/model"
	"asistencia-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdmin_IsIdempotentAndResyncsPassword(t *testing.T) {
	db := testutil.NewDB(t)

	admin, err := database.SeedAdmin(db, testutil.AdminEmail, "otra-clave")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Usuario{}).Where("email = ?", testutil.AdminEmail).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored model.Usuario
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.Equal(t, admin.PasswordHash, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("otra-clave")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(testutil.AdminPassword)))
}

func TestSeedCatalogos_IsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	var before int64
	require.NoError(t, db.Model(&model.TipoAsistencia{}).Count(&before).Error)
	require.NoError(t, database.SeedCatalogos(db))

	var after int64
	require.NoError(t, db.Model(&model.TipoAsistencia{}).Count(&after).Error)
	assert.Equal(t, before, after)
	assert.NotZero(t, after)
}
