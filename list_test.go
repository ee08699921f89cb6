package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wavevault/models"
)

func TestListRecordsTrail(t *testing.T) {
	ctx, _ := newTestContext(t)

	stems, err := ctx.Catalog.CreateItem(models.Item{Name: "Stems", Kind: models.KindFolder, OwnerID: "test-user"})
	assert.NoError(t, err)

	drums, err := ctx.Catalog.CreateItem(models.Item{Name: "Drums", Kind: models.KindFolder, ParentFolderIDs: models.StringList{stems.ID}, OwnerID: "test-user"})
	assert.NoError(t, err)

	err = ctx.List(stems.ID)
	assert.NoError(t, err)

	err = ctx.List(drums.ID)
	assert.NoError(t, err)

	trail := ctx.Nav.Steps()
	assert.Len(t, trail, 2)
	assert.Equal(t, "Stems", trail[0].Name)
	assert.Equal(t, "Drums", trail[1].Name)
}

func TestListHomeResetsTrail(t *testing.T) {
	ctx, _ := newTestContext(t)

	stems, err := ctx.Catalog.CreateItem(models.Item{Name: "Stems", Kind: models.KindFolder, OwnerID: "test-user"})
	assert.NoError(t, err)

	err = ctx.List(stems.ID)
	assert.NoError(t, err)

	err = ctx.List("")
	assert.NoError(t, err)

	assert.Empty(t, ctx.Nav.Steps())
}

func TestListRejectsFiles(t *testing.T) {
	ctx, _ := newTestContext(t)

	size := int64(4)
	file, err := ctx.Catalog.CreateItem(models.Item{Name: "kick.wav", Kind: models.KindFile, OwnerID: "test-user", Size: &size})
	assert.NoError(t, err)

	err = ctx.List(file.ID)
	assert.ErrorIs(t, err, ErrItemIsNotAFolder)

	assert.Empty(t, ctx.Nav.Steps())
}

func TestListBumpsOpenedAt(t *testing.T) {
	ctx, _ := newTestContext(t)

	stems, err := ctx.Catalog.CreateItem(models.Item{Name: "Stems", Kind: models.KindFolder, OwnerID: "test-user"})
	assert.NoError(t, err)

	err = ctx.List(stems.ID)
	assert.NoError(t, err)

	stored, err := ctx.Catalog.GetItem(stems.ID)
	assert.NoError(t, err)
	assert.False(t, stored.OpenedAt.Before(stems.OpenedAt))
}
