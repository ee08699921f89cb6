package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wavevault/models"
)

func testService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return New(db)
}

func mustCreate(t *testing.T, service *Service, item models.Item) models.Item {
	created, err := service.CreateItem(item)
	require.NoError(t, err)

	return created
}

func TestCreateItemAssignsIDAndTimestamps(t *testing.T) {
	service := testService(t)

	created := mustCreate(t, service, models.Item{Name: "Drums", Kind: models.KindFolder, OwnerID: "local"})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.ModifiedAt)
}

func TestCreateItemValidatesName(t *testing.T) {
	service := testService(t)

	_, err := service.CreateItem(models.Item{Kind: models.KindFolder})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.CreateItem(models.Item{
		Name: strings.Repeat("x", models.MaxNameLength+1),
		Kind: models.KindFolder,
	})
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestCreateItemRejectsUnknownKind(t *testing.T) {
	service := testService(t)

	_, err := service.CreateItem(models.Item{Name: "odd", Kind: "playlist"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCreateItemValidatesParent(t *testing.T) {
	service := testService(t)

	_, err := service.CreateItem(models.Item{
		Name:            "orphan",
		Kind:            models.KindFolder,
		ParentFolderIDs: models.StringList{"missing"},
	})
	assert.ErrorIs(t, err, ErrParentNotAFolder)

	file := mustCreate(t, service, models.Item{Name: "kick.wav", Kind: models.KindFile})

	_, err = service.CreateItem(models.Item{
		Name:            "under-a-file",
		Kind:            models.KindFolder,
		ParentFolderIDs: models.StringList{file.ID},
	})
	assert.ErrorIs(t, err, ErrParentNotAFolder)
}

func TestProjectsCannotHaveAParent(t *testing.T) {
	service := testService(t)
	folder := mustCreate(t, service, models.Item{Name: "Drums", Kind: models.KindFolder})

	_, err := service.CreateItem(models.Item{
		Name:            "Album",
		Kind:            models.KindProject,
		ParentFolderIDs: models.StringList{folder.ID},
	})
	assert.ErrorIs(t, err, ErrProjectHasParent)
}

func TestFileAttributesAreFileOnly(t *testing.T) {
	service := testService(t)

	size := int64(1024)
	_, err := service.CreateItem(models.Item{Name: "Drums", Kind: models.KindFolder, Size: &size})
	assert.ErrorIs(t, err, ErrFileFieldsOnFolder)

	_, err = service.CreateItem(models.Item{Name: "kick.wav", Kind: models.KindFile, Size: &size})
	assert.NoError(t, err)
}

func TestListItemsByParent(t *testing.T) {
	service := testService(t)

	folder := mustCreate(t, service, models.Item{Name: "Drums", Kind: models.KindFolder})
	mustCreate(t, service, models.Item{
		Name:            "kick.wav",
		Kind:            models.KindFile,
		ParentFolderIDs: models.StringList{folder.ID},
	})
	mustCreate(t, service, models.Item{Name: "notes.wav", Kind: models.KindFile})
	mustCreate(t, service, models.Item{Name: "Album", Kind: models.KindProject})

	root, err := service.ListItems("")
	assert.NoError(t, err)
	assert.Len(t, root, 2) // the folder and the rootless file; never projects

	children, err := service.ListItems(folder.ID)
	assert.NoError(t, err)
	assert.Len(t, children, 1)
	assert.Equal(t, "kick.wav", children[0].Name)

	projects, err := service.ListProjects()
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestUpdateItemRenames(t *testing.T) {
	service := testService(t)
	folder := mustCreate(t, service, models.Item{Name: "Drums", Kind: models.KindFolder})

	name := "Percussion"
	updated, err := service.UpdateItem(folder.ID, models.ItemUpdate{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Percussion", updated.Name)
	assert.True(t, updated.ModifiedAt.After(folder.ModifiedAt) || updated.ModifiedAt.Equal(folder.ModifiedAt))

	_, err = service.UpdateItem("missing", models.ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestReparentingIntoADescendantIsRejected(t *testing.T) {
	service := testService(t)

	top := mustCreate(t, service, models.Item{Name: "top", Kind: models.KindFolder})
	middle := mustCreate(t, service, models.Item{
		Name:            "middle",
		Kind:            models.KindFolder,
		ParentFolderIDs: models.StringList{top.ID},
	})
	bottom := mustCreate(t, service, models.Item{
		Name:            "bottom",
		Kind:            models.KindFolder,
		ParentFolderIDs: models.StringList{middle.ID},
	})

	parents := models.StringList{bottom.ID}
	_, err := service.UpdateItem(top.ID, models.ItemUpdate{ParentFolderIDs: &parents})
	assert.ErrorIs(t, err, ErrParentIsDescendant)

	// Moving into itself is the degenerate cycle
	self := models.StringList{top.ID}
	_, err = service.UpdateItem(top.ID, models.ItemUpdate{ParentFolderIDs: &self})
	assert.ErrorIs(t, err, ErrParentIsDescendant)

	// A legal move still works
	other := mustCreate(t, service, models.Item{Name: "other", Kind: models.KindFolder})
	parents = models.StringList{other.ID}
	moved, err := service.UpdateItem(bottom.ID, models.ItemUpdate{ParentFolderIDs: &parents})
	assert.NoError(t, err)
	assert.Equal(t, other.ID, moved.ParentFolderID())
}

func TestDeleteItemDoesNotCascade(t *testing.T) {
	service := testService(t)

	folder := mustCreate(t, service, models.Item{Name: "Drums", Kind: models.KindFolder})
	file := mustCreate(t, service, models.Item{
		Name:            "kick.wav",
		Kind:            models.KindFile,
		ParentFolderIDs: models.StringList{folder.ID},
	})

	assert.NoError(t, service.DeleteItem(folder.ID))
	assert.ErrorIs(t, service.DeleteItem(folder.ID), ErrItemNotFound)

	// The child record survives with its dangling parent reference
	orphan, err := service.GetItem(file.ID)
	assert.NoError(t, err)
	assert.Equal(t, folder.ID, orphan.ParentFolderID())
}

func TestShareItemDeduplicatesCollaborators(t *testing.T) {
	service := testService(t)
	file := mustCreate(t, service, models.Item{Name: "kick.wav", Kind: models.KindFile})

	shared, err := service.ShareItem(file.ID, []string{"mara@example.com", "jon@example.com"})
	assert.NoError(t, err)
	assert.Len(t, shared.Collaborators, 2)

	shared, err = service.ShareItem(file.ID, []string{"mara@example.com", ""})
	assert.NoError(t, err)
	assert.Len(t, shared.Collaborators, 2)

	_, err = service.ShareItem("missing", []string{"mara@example.com"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSetStarredAndRecordOpened(t *testing.T) {
	service := testService(t)
	file := mustCreate(t, service, models.Item{Name: "kick.wav", Kind: models.KindFile})

	assert.NoError(t, service.SetStarred(file.ID, true))

	stored, err := service.GetItem(file.ID)
	assert.NoError(t, err)
	assert.True(t, stored.Starred)

	assert.NoError(t, service.RecordOpened(file.ID))
	assert.ErrorIs(t, service.SetStarred("missing", true), ErrItemNotFound)
	assert.ErrorIs(t, service.RecordOpened("missing"), ErrItemNotFound)
}
