package main

import (
	"wavevault/catalog"
	"wavevault/utils"
)

// ToggleStar flips the star in the mirror first, then commits to the
// catalog, toggling back if the catalog rejects it.
func (ctx *Context) ToggleStar(id string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	item, found := ctx.Items.Get(id)

	if !found {
		return catalog.ErrItemNotFound
	}

	starred := !item.Starred

	ctx.Items.ToggleStarred(id)

	err = ctx.Catalog.SetStarred(id, starred)

	if err != nil {
		ctx.Items.ToggleStarred(id)
		return err
	}

	if starred {
		utils.ConsoleAndLogPrintf("Starred \"%s\"", item.Name)
	} else {
		utils.ConsoleAndLogPrintf("Unstarred \"%s\"", item.Name)
	}

	return nil
}
