package main

import (
	"log"

	"github.com/schollz/progressbar/v3"

	"wavevault/crypto"
	"wavevault/models"
	"wavevault/utils"
)

// Verify re-hashes every stored blob and checks it against its catalog
// address. A mismatch means the stored audio was corrupted or replaced.
func (ctx *Context) Verify() error {
	items, err := ctx.Catalog.ListAll()

	if err != nil {
		return err
	}

	var files []models.Item

	for _, item := range items {
		if item.IsFile() && item.BlobAddress != "" {
			files = append(files, item)
		}
	}

	if len(files) == 0 {
		utils.ConsoleAndLogPrintf("No stored files to verify.")
		return nil
	}

	utils.ConsoleAndLogPrintf("Verifying %s", utils.Pluralize("stored file", int64(len(files))))

	bar := progressbar.Default(int64(len(files)))

	missing := int64(0)
	corrupted := int64(0)

	orchestrator := utils.NewTaskOrchestrator(bar, len(files), ctx.Config.MaxConcurrentFileOperations)

	for _, file := range files {
		orchestrator.StartTask()
		go ctx.verifyFile(orchestrator, file, &missing, &corrupted)
	}

	orchestrator.WaitForTasks()

	if missing == 0 && corrupted == 0 {
		utils.ConsoleAndLogPrintf("All stored files verified.")
		return nil
	}

	utils.ConsoleAndLogPrintf("Found %s and %s", utils.Pluralize("missing blob", missing), utils.Pluralize("corrupted blob", corrupted))
	return ErrIntegrityCheckFailed
}

func (ctx *Context) verifyFile(orchestrator *utils.TaskOrchestrator, file models.Item, missing *int64, corrupted *int64) {
	reader, err := ctx.Blobs.Open(file.BlobAddress)

	if err != nil {
		orchestrator.Lock()
		log.Printf("Missing blob for \"%s\" at %s", file.Name, file.BlobAddress)
		*missing++
		orchestrator.Unlock()

		orchestrator.FinishTask()
		return
	}

	hash, err := crypto.HashReader(reader)
	_ = reader.Close()

	if err != nil || hash != file.BlobAddress {
		orchestrator.Lock()
		log.Printf("Corrupted blob for \"%s\" at %s", file.Name, file.BlobAddress)
		*corrupted++
		orchestrator.Unlock()
	}

	orchestrator.FinishTask()
}
