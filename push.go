package main

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"wavevault/models"
	"wavevault/utils"
)

type uploadJob struct {
	file           FileEntry
	parentFolderID string
}

// Push uploads a local directory into the catalog: folders are created
// top-down first, then the files are stored in batches. A file that fails
// is logged and skipped; the rest of the batch still uploads.
func (ctx *Context) Push(rootPath string, projectName string) error {
	tree, err := ctx.ScanDirectory(rootPath)

	if err != nil {
		return err
	}

	total := tree.FileCount()

	if total == 0 {
		utils.ConsoleAndLogPrintf("No files to upload in \"%s\".", tree.Path)
		return nil
	}

	var projectIDs models.StringList

	if projectName != "" {
		project, createErr := ctx.Catalog.CreateItem(models.Item{
			Name:    projectName,
			Kind:    models.KindProject,
			OwnerID: ctx.Config.UserID,
		})

		if createErr != nil {
			return createErr
		}

		ctx.Items.Add(project)
		projectIDs = models.StringList{project.ID}
	}

	utils.ConsoleAndLogPrintf("Uploading %s (%s) from \"%s\"", utils.Pluralize("file", total), humanize.Bytes(uint64(tree.TotalSize())), tree.Path)

	jobs, err := ctx.createFolderItems(tree, "", projectIDs)

	if err != nil {
		return err
	}

	bar := progressbar.Default(total)

	uploaded := int64(0)
	failed := int64(0)

	for start := 0; start < len(jobs); start += int(ctx.Config.BatchSize) {
		end := min(start+int(ctx.Config.BatchSize), len(jobs))
		batch := jobs[start:end]

		var pending []models.Item

		orchestrator := utils.NewTaskOrchestrator(bar, len(batch), ctx.Config.MaxConcurrentFileOperations)

		for _, job := range batch {
			orchestrator.StartTask()
			go ctx.uploadFile(orchestrator, job, projectIDs, &pending, &failed)
		}

		orchestrator.WaitForTasks()

		for _, item := range pending {
			created, createErr := ctx.Catalog.CreateItem(item)

			if createErr != nil {
				log.Printf("Could not catalog file \"%s\": %v", item.Name, createErr)
				failed++
				continue
			}

			ctx.Items.Add(created)
			uploaded++
		}
	}

	utils.ConsoleAndLogPrintf("Uploaded %s of %s", humanize.Comma(uploaded), utils.Pluralize("file", total))

	if failed > 0 {
		utils.ConsoleAndLogPrintf("%s could not be uploaded. See the log for details.", utils.Pluralize("file", failed))
	}

	return nil
}

// createFolderItems creates the catalog folders for the scanned tree,
// parents before children, and returns one upload job per file.
func (ctx *Context) createFolderItems(tree *FolderTree, parentFolderID string, projectIDs models.StringList) ([]uploadJob, error) {
	var parentIDs models.StringList

	if parentFolderID != "" {
		parentIDs = models.StringList{parentFolderID}
	}

	folder, err := ctx.Catalog.CreateItem(models.Item{
		Name:            tree.Name,
		Kind:            models.KindFolder,
		ParentFolderIDs: parentIDs,
		ProjectIDs:      projectIDs,
		OwnerID:         ctx.Config.UserID,
	})

	if err != nil {
		return nil, err
	}

	ctx.Items.Add(folder)

	var jobs []uploadJob

	for _, file := range tree.Files {
		jobs = append(jobs, uploadJob{
			file:           file,
			parentFolderID: folder.ID,
		})
	}

	for _, subFolder := range tree.Folders {
		subJobs, err := ctx.createFolderItems(subFolder, folder.ID, projectIDs)

		if err != nil {
			return nil, err
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

func (ctx *Context) uploadFile(orchestrator *utils.TaskOrchestrator, job uploadJob, projectIDs models.StringList, pending *[]models.Item, failed *int64) {
	// If the file disappeared since the scan we can ignore it
	if !IsFile(job.file.Path) {
		orchestrator.Lock()
		log.Printf("Ignoring not-found file \"%s\"", job.file.Path)
		*failed++
		orchestrator.Unlock()

		orchestrator.FinishTask()
		return
	}

	address, err := ctx.Blobs.Put(job.file.Path)

	if err != nil {
		orchestrator.Lock()
		log.Printf("Could not store file \"%s\": %v", job.file.Path, err)
		*failed++
		orchestrator.Unlock()

		orchestrator.FinishTask()
		return
	}

	size := job.file.Size
	format := DetectFormat(job.file.Path)

	item := models.Item{
		Name:            job.file.Name,
		Kind:            models.KindFile,
		ParentFolderIDs: models.StringList{job.parentFolderID},
		ProjectIDs:      projectIDs,
		OwnerID:         ctx.Config.UserID,
		Size:            &size,
		Format:          &format,
		BlobAddress:     address,
	}

	if format == "wav" {
		if duration, durationErr := GetWavDuration(job.file.Path); durationErr == nil {
			item.Duration = &duration
		}
	}

	orchestrator.Lock()
	*pending = append(*pending, item)
	orchestrator.Unlock()

	orchestrator.FinishTask()
}
