package main

import (
	"wavevault/models"
	"wavevault/utils"
)

func (ctx *Context) MakeFolder(name string, parentFolderID string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	var parentIDs models.StringList

	if parentFolderID != "" {
		parentIDs = models.StringList{parentFolderID}
	}

	folder, err := ctx.Catalog.CreateItem(models.Item{
		Name:            name,
		Kind:            models.KindFolder,
		ParentFolderIDs: parentIDs,
		OwnerID:         ctx.Config.UserID,
	})

	if err != nil {
		return err
	}

	ctx.Items.Add(folder)

	utils.ConsoleAndLogPrintf("Created folder \"%s\" (%s)", folder.Name, folder.ID)
	return nil
}

func (ctx *Context) NewProject(name string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	project, err := ctx.Catalog.CreateItem(models.Item{
		Name:    name,
		Kind:    models.KindProject,
		OwnerID: ctx.Config.UserID,
	})

	if err != nil {
		return err
	}

	ctx.Items.Add(project)

	utils.ConsoleAndLogPrintf("Created project \"%s\" (%s)", project.Name, project.ID)
	return nil
}
