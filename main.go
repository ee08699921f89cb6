package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"wavevault/blob"
	"wavevault/catalog"
	"wavevault/config"
	"wavevault/localstate"
	"wavevault/state"
	"wavevault/utils"
)

//goland:noinspection GoUnnecessarilyExportedIdentifiers
var AppVersion = "1.0"

var usageText = "Usage: ./wavevault command.\nAvailable commands:\n  push\n  ls\n  mkdir\n  new_project\n  rename\n  star\n  tag\n  share\n  rm\n  get\n  verify\n  checkout\n  billing\n"

//go:embed config.yaml
var defaultConfigData []byte

func main() {
	c, err := config.Load(defaultConfigData)

	if err != nil {
		log.Fatal(err)
	}

	err = utils.SetupLogger(c.LogFilePath)

	if err != nil {
		log.Fatal(err)
	}

	db := initDb(c)

	blobs, err := blob.Open(c.BlobDataPath)

	if err != nil {
		log.Fatalf("Failed to open the blob store. Error: %v", err)
	}

	local, err := localstate.Open(c.LocalStatePath)

	if err != nil {
		log.Fatalf("Failed to open the local state store. Error: %v", err)
	}

	defer func() {
		_ = local.Close()
	}()

	ctx := &Context{
		Config:   c,
		DB:       db,
		Catalog:  catalog.New(db),
		Blobs:    blobs,
		Local:    local,
		Items:    state.NewItemStore(),
		Nav:      state.NewNavigationHistory(local),
		Dialogs:  state.NewDialogs(),
		Prompter: NewConsolePrompter(),
		Billing:  NewHostedCheckout(c.CheckoutURL, c.BillingPortalURL),
	}

	debugFormat := ""

	if c.IsDebug {
		debugFormat = " (debug)"
	}

	utils.ConsoleAndLogPrintf("WaveVault version %s%s. Using %s for file operations and batches of %s", AppVersion, debugFormat, utils.Pluralize("thread", ctx.Config.MaxConcurrentFileOperations), humanize.Comma(ctx.Config.BatchSize))
	startTime := time.Now()

	if len(os.Args) < 2 {
		utils.ConsoleAndLogPrintf(fmt.Sprintf("A command must be specified. %s", usageText))
		return
	}

	err = ctx.runCommand(strings.ToLower(os.Args[1]))

	if err != nil {
		utils.ConsoleAndLogPrintf("Error: %v", err)
	}

	utils.ConsoleAndLogPrintf("Finished in %s", utils.FormatDuration(time.Since(startTime)))
}

func (ctx *Context) runCommand(command string) error {
	switch command {
	case "push":
		if len(os.Args) < 3 {
			log.Fatal("push requires a directory path and optionally a project name.")
		}

		projectName := ""

		if len(os.Args) > 3 {
			projectName = os.Args[3]
		}

		return ctx.Push(os.Args[2], projectName)

	case "ls":
		folderID := ""

		if len(os.Args) > 2 {
			folderID = os.Args[2]
		}

		return ctx.List(folderID)

	case "mkdir":
		if len(os.Args) < 3 {
			log.Fatal("mkdir requires a folder name and optionally a parent folder id.")
		}

		parentFolderID := ""

		if len(os.Args) > 3 {
			parentFolderID = os.Args[3]
		}

		return ctx.MakeFolder(os.Args[2], parentFolderID)

	case "new_project":
		if len(os.Args) != 3 {
			log.Fatal("new_project requires a project name.")
		}

		return ctx.NewProject(os.Args[2])

	case "rename":
		if len(os.Args) != 4 {
			log.Fatal("rename requires an item id and a new name.")
		}

		return ctx.Rename(os.Args[2], os.Args[3])

	case "star":
		if len(os.Args) != 3 {
			log.Fatal("star requires an item id.")
		}

		return ctx.ToggleStar(os.Args[2])

	case "tag":
		if len(os.Args) != 5 {
			log.Fatal("tag requires an item id, a field and a value.")
		}

		return ctx.TagItem(os.Args[2], os.Args[3], os.Args[4])

	case "share":
		if len(os.Args) < 4 {
			log.Fatal("share requires an item id and at least one user.")
		}

		return ctx.Share(os.Args[2], os.Args[3:])

	case "rm":
		if len(os.Args) != 3 {
			log.Fatal("rm requires an item id.")
		}

		return ctx.Delete(os.Args[2])

	case "get":
		if len(os.Args) < 3 {
			log.Fatal("get requires an item id and optionally a destination path.")
		}

		destination := ""

		if len(os.Args) > 3 {
			destination = os.Args[3]
		}

		return ctx.Download(os.Args[2], destination)

	case "verify":
		return ctx.Verify()

	case "checkout":
		if len(os.Args) != 3 {
			log.Fatal("checkout requires a plan id.")
		}

		return ctx.Checkout(os.Args[2])

	case "billing":
		return ctx.BillingPortal()
	}

	return errors.New(fmt.Sprintf("Command \"%s\" not recognised. %s", command, usageText))
}
