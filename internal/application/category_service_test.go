package application

import (
	"testing"

	"github.com/opinio-app/survey_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	category, err := svc.Create("  Santé ")
	require.NoError(t, err)
	assert.Equal(t, "Santé", category.Name)
	assert.NotZero(t, category.CategoryID)

	_, err = svc.Create("   ")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorInvalid, domain.KindOf(err))

	_, err = svc.Create("Santé")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorConflict, domain.KindOf(err))
}

func TestUpdateCategory(t *testing.T) {
	repo := newStubCategoryRepo("Santé")
	svc := NewCategoryService(repo)

	category, err := svc.Update(1, "Bien-être")
	require.NoError(t, err)
	assert.Equal(t, "Bien-être", category.Name)

	_, err = svc.Update(1, "")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorInvalid, domain.KindOf(err))

	_, err = svc.Update(42, "Autre")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorNotFound, domain.KindOf(err))
}

func TestDeleteCategory(t *testing.T) {
	repo := newStubCategoryRepo("Santé")
	svc := NewCategoryService(repo)

	require.NoError(t, svc.Delete(1))
	assert.Equal(t, domain.ErrorNotFound, domain.KindOf(svc.Delete(1)))
}
