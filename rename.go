package main

import (
	"wavevault/catalog"
	"wavevault/models"
	"wavevault/utils"
)

// Rename applies the new name to the mirror first so the session sees it
// immediately, then commits to the catalog. A rejected update rolls the
// mirror back.
func (ctx *Context) Rename(id string, newName string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	item, found := ctx.Items.Get(id)

	if !found {
		return catalog.ErrItemNotFound
	}

	previousName := item.Name

	ctx.Items.Update(id, models.ItemUpdate{Name: &newName})

	_, err = ctx.Catalog.UpdateItem(id, models.ItemUpdate{Name: &newName})

	if err != nil {
		ctx.Items.Update(id, models.ItemUpdate{Name: &previousName})
		return err
	}

	utils.ConsoleAndLogPrintf("Renamed \"%s\" to \"%s\"", previousName, newName)
	return nil
}
