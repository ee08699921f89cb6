package main

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"wavevault/models"
)

func TestPushUploadsTree(t *testing.T) {
	ctx, workPath := newTestContext(t)

	sourcePath := path.Join(workPath, "session")
	writeTestWav(t, path.Join(sourcePath, "kick.wav"), 1.5)
	writeTestWav(t, path.Join(sourcePath, "Drums", "snare.wav"), 2)

	err := ctx.Push(sourcePath, "Demo EP")
	assert.NoError(t, err)

	projects, err := ctx.Catalog.ListProjects()
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "Demo EP", projects[0].Name)

	items, err := ctx.Catalog.ListAll()
	assert.NoError(t, err)

	// One project, two folders and two files
	assert.Len(t, items, 5)

	kick := findItemByName(t, items, "kick.wav")
	assert.Equal(t, models.KindFile, kick.Kind)
	assert.NotEmpty(t, kick.BlobAddress)
	assert.True(t, ctx.Blobs.Exists(kick.BlobAddress))
	assert.NotNil(t, kick.Size)
	assert.NotNil(t, kick.Format)
	assert.Equal(t, "wav", *kick.Format)
	assert.NotNil(t, kick.Duration)
	assert.InDelta(t, 1.5, *kick.Duration, 0.01)
	assert.Equal(t, models.StringList{projects[0].ID}, kick.ProjectIDs)

	drums := findItemByName(t, items, "Drums")
	assert.Equal(t, models.KindFolder, drums.Kind)

	snare := findItemByName(t, items, "snare.wav")
	assert.Equal(t, drums.ID, snare.ParentFolderID())

	// The mirror saw every created item
	assert.Len(t, ctx.Items.FilesAndFolders(), 4)
	assert.Len(t, ctx.Items.Projects(), 1)
}

func TestPushWithoutProject(t *testing.T) {
	ctx, workPath := newTestContext(t)

	sourcePath := path.Join(workPath, "loops")
	writeTestWav(t, path.Join(sourcePath, "break.wav"), 1)

	err := ctx.Push(sourcePath, "")
	assert.NoError(t, err)

	projects, err := ctx.Catalog.ListProjects()
	assert.NoError(t, err)
	assert.Empty(t, projects)

	items, err := ctx.Catalog.ListAll()
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestPushContinuesPastFailedFiles(t *testing.T) {
	ctx, workPath := newTestContext(t)

	sourcePath := path.Join(workPath, "session")
	writeTestWav(t, path.Join(sourcePath, "kick.wav"), 1)
	writeTestWav(t, path.Join(sourcePath, "snare.wav"), 1)

	// A dangling symlink survives the scan but cannot be uploaded
	err := os.Symlink(path.Join(sourcePath, "missing.wav"), path.Join(sourcePath, "ghost.wav"))
	assert.NoError(t, err)

	err = ctx.Push(sourcePath, "")
	assert.NoError(t, err)

	items, err := ctx.Catalog.ListAll()
	assert.NoError(t, err)

	// The root folder and the two real files made it
	assert.Len(t, items, 3)
	assert.Nil(t, findItemOrNil(items, "ghost.wav"))
}

func TestPushEmptyDirectory(t *testing.T) {
	ctx, workPath := newTestContext(t)

	sourcePath := path.Join(workPath, "empty")
	assert.NoError(t, os.MkdirAll(sourcePath, 0750))

	err := ctx.Push(sourcePath, "Demo EP")
	assert.NoError(t, err)

	items, err := ctx.Catalog.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func findItemByName(t *testing.T, items []models.Item, name string) models.Item {
	item := findItemOrNil(items, name)

	if item == nil {
		t.Fatalf("item %q not found", name)
	}

	return *item
}

func findItemOrNil(items []models.Item, name string) *models.Item {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}

	return nil
}
