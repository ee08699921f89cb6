package main

import (
	"wavevault/models"
	"wavevault/utils"
)

// TagItem sets one field of the item's tag set. The file_type and status
// fields replace their value; instrument and version accumulate.
func (ctx *Context) TagItem(id string, field string, value string) error {
	err := ctx.SyncMirror()

	if err != nil {
		return err
	}

	item, err := ctx.Catalog.GetItem(id)

	if err != nil {
		return err
	}

	tags := models.TagSet{}

	if item.Tags != nil {
		tags = *item.Tags
	}

	switch field {
	case "file_type":
		tags.FileType = value

	case "status":
		tags.Status = value

	case "instrument":
		if !utils.IsInArray(value, tags.Instruments) {
			tags.Instruments = append(tags.Instruments, value)
		}

	case "version":
		if !utils.IsInArray(value, tags.Versions) {
			tags.Versions = append(tags.Versions, value)
		}

	default:
		return ErrUnknownTagField
	}

	updated, err := ctx.Catalog.UpdateItem(id, models.ItemUpdate{Tags: &tags})

	if err != nil {
		return err
	}

	ctx.Items.Update(id, models.ItemUpdate{Tags: updated.Tags})

	utils.ConsoleAndLogPrintf("Tagged \"%s\" with %s \"%s\"", updated.Name, field, value)
	return nil
}
