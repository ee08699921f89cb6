package main

import (
	"wavevault/models"
	"wavevault/state"
	"wavevault/utils"
)

// Share adds collaborators to an item after a confirmation prompt driven
// through the share dialog.
func (ctx *Context) Share(id string, recipients []string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	item, err := ctx.Catalog.GetItem(id)

	if err != nil {
		return err
	}

	ctx.Dialogs.Open(state.SharePayload{Item: item, Recipients: recipients})
	confirmed := ctx.Prompter.Confirm(ctx.Dialogs, state.DialogShare)
	ctx.Dialogs.Close(state.DialogShare)

	if !confirmed {
		utils.ConsoleAndLogPrintf("Share cancelled.")
		return nil
	}

	updated, err := ctx.Catalog.ShareItem(id, recipients)

	if err != nil {
		return err
	}

	ctx.Items.Update(id, models.ItemUpdate{Collaborators: &updated.Collaborators})

	utils.ConsoleAndLogPrintf("Shared \"%s\" with %s", updated.Name, utils.Pluralize("collaborator", int64(len(updated.Collaborators))))
	return nil
}
