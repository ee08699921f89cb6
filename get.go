package main

import (
	"path"

	"wavevault/utils"
)

// Download copies a file's stored audio out of the blob store to the
// destination path, or the current directory when none is given.
func (ctx *Context) Download(id string, destinationPath string) error {
	item, err := ctx.Catalog.GetItem(id)

	if err != nil {
		return err
	}

	if !item.IsFile() {
		return ErrItemIsNotAFile
	}

	if item.BlobAddress == "" {
		return ErrFileHasNoBlob
	}

	destination := destinationPath

	if destination == "" || IsDir(destination) {
		destination = path.Join(destination, item.Name)
	}

	err = ctx.Blobs.Copy(item.BlobAddress, destination)

	if err != nil {
		return err
	}

	err = ctx.Catalog.RecordOpened(item.ID)

	if err != nil {
		return err
	}

	utils.ConsoleAndLogPrintf("Downloaded \"%s\" to \"%s\"", item.Name, destination)
	return nil
}
