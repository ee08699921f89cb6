package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"wavevault/models"
	"wavevault/utils"
)

// List prints the contents of a folder and records the visit in the
// breadcrumb trail. An empty folder ID lists the home view and resets
// the trail.
func (ctx *Context) List(folderID string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	if folderID == "" {
		ctx.Nav.Reset()
		return ctx.listHome()
	}

	folder, err := ctx.Catalog.GetItem(folderID)

	if err != nil {
		return err
	}

	if !folder.IsFolder() {
		return ErrItemIsNotAFolder
	}

	err = ctx.Catalog.RecordOpened(folder.ID)

	if err != nil {
		return err
	}

	printTrail(ctx.Nav.RecordVisit(folder.ID, folder.Name))

	items, err := ctx.Catalog.ListItems(folder.ID)

	if err != nil {
		return err
	}

	printItems(items)
	return nil
}

func (ctx *Context) listHome() error {
	projects, err := ctx.Catalog.ListProjects()

	if err != nil {
		return err
	}

	if len(projects) > 0 {
		utils.PrintFormattedTitle("Projects")
		printItems(projects)
	}

	items, err := ctx.Catalog.ListItems("")

	if err != nil {
		return err
	}

	utils.PrintFormattedTitle("Files and folders")
	printItems(items)

	starred := ctx.Items.StarredItems()

	if len(starred) > 0 {
		utils.PrintFormattedTitle("Starred")
		printItems(starred)
	}

	return nil
}

func printTrail(trail []models.NavigationStep) {
	if len(trail) == 0 {
		return
	}

	names := make([]string, len(trail))

	for i, step := range trail {
		names[i] = step.Name
	}

	color.HiBlack("%s", strings.Join(names, " / "))
}

func printItems(items []models.Item) {
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}

	for _, item := range items {
		marker := " "

		if item.Starred {
			marker = "*"
		}

		fmt.Printf("%s %-7s  %s%s\n", marker, item.Kind, utils.TruncateForDisplay(item.Name, 60), describeItem(&item))
	}
}

func describeItem(item *models.Item) string {
	var parts []string

	if item.Size != nil {
		parts = append(parts, humanize.Bytes(uint64(*item.Size)))
	}

	if item.Duration != nil {
		parts = append(parts, utils.FormatAudioDuration(*item.Duration))
	}

	if item.Format != nil {
		parts = append(parts, *item.Format)
	}

	if len(item.Collaborators) > 0 {
		parts = append(parts, utils.Pluralize("collaborator", int64(len(item.Collaborators))))
	}

	if len(parts) == 0 {
		return ""
	}

	return fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
}
