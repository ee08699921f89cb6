package main

import (
	"errors"
	"log"

	"wavevault/blob"
	"wavevault/state"
	"wavevault/utils"
)

// Delete removes an item after a confirmation prompt driven through the
// delete dialog. Children of a deleted folder are kept; a deleted file's
// stored audio goes too once nothing else references it.
func (ctx *Context) Delete(id string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	item, err := ctx.Catalog.GetItem(id)

	if err != nil {
		return err
	}

	ctx.Dialogs.Open(state.DeletePayload{
		Item: item,
		OnDone: func() {
			utils.ConsoleAndLogPrintf("Deleted \"%s\"", item.Name)
		},
	})

	confirmed := ctx.Prompter.Confirm(ctx.Dialogs, state.DialogDelete)

	if !confirmed {
		ctx.Dialogs.Close(state.DialogDelete)
		utils.ConsoleAndLogPrintf("Delete cancelled.")
		return nil
	}

	err = ctx.Catalog.DeleteItem(id)

	if err != nil {
		ctx.Dialogs.Close(state.DialogDelete)
		return err
	}

	ctx.Items.Remove(id)

	if item.IsFile() && item.BlobAddress != "" {
		ctx.removeUnreferencedBlob(item.BlobAddress, item.Name)
	}

	if payload, found := ctx.Dialogs.Payload(state.DialogDelete); found {
		if deletePayload, ok := payload.(state.DeletePayload); ok && deletePayload.OnDone != nil {
			deletePayload.OnDone()
		}
	}

	ctx.Dialogs.Close(state.DialogDelete)
	return nil
}

// Identical files share a blob, so the stored audio only goes when the
// last catalog reference to its address is gone.
func (ctx *Context) removeUnreferencedBlob(address string, name string) {
	references, err := ctx.Catalog.CountBlobReferences(address)

	if err != nil {
		log.Printf("Could not check blob references for \"%s\": %v", name, err)
		return
	}

	if references > 0 {
		return
	}

	err = ctx.Blobs.Delete(address)

	if err != nil && !errors.Is(err, blob.ErrBlobNotFound) {
		log.Printf("Could not remove stored audio for \"%s\": %v", name, err)
	}
}
