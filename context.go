package main

import (
	"gorm.io/gorm"

	"wavevault/blob"
	"wavevault/catalog"
	"wavevault/config"
	"wavevault/localstate"
	"wavevault/state"
)

type Context struct {
	Config   *config.Config
	DB       *gorm.DB
	Catalog  *catalog.Service
	Blobs    *blob.Store
	Local    *localstate.Store
	Items    *state.ItemStore
	Nav      *state.NavigationHistory
	Dialogs  *state.Dialogs
	Prompter Prompter
	Billing  Checkout
}
