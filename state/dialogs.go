package state

import (
	"sync"

	"wavevault/models"
)

type DialogKind string

const (
	DialogEditItem         DialogKind = "edit-item"
	DialogShare            DialogKind = "share"
	DialogDelete           DialogKind = "delete"
	DialogCreateItem       DialogKind = "create-item"
	DialogCreateProject    DialogKind = "create-project"
	DialogRequest          DialogKind = "request"
	DialogSaveItems        DialogKind = "save-items"
	DialogSelectFiles      DialogKind = "select-files"
	DialogCreateCollection DialogKind = "create-collection"
	DialogRemove           DialogKind = "remove"
)

// DialogPayload is a tagged variant: one concrete type per dialog, so a
// switch over payloads is checked when a dialog is added.
type DialogPayload interface {
	Kind() DialogKind
}

type EditItemPayload struct {
	Item models.Item
}

type SharePayload struct {
	Item       models.Item
	Recipients []string
}

type DeletePayload struct {
	Item   models.Item
	OnDone func()
}

type CreateItemPayload struct {
	ItemKind       models.ItemKind
	ParentFolderID string
	SharedWith     models.StringList
}

type CreateProjectPayload struct {
	Name string
}

type RequestPayload struct {
	Item    models.Item
	Message string
}

type SaveItemsPayload struct {
	Items          []models.Item
	TargetFolderID string
}

type SelectFilesPayload struct {
	Paths      []string
	OnSelected func(paths []string)
}

type CreateCollectionPayload struct {
	ItemIDs []string
}

type RemovePayload struct {
	Item          models.Item
	FromProjectID string
}

func (EditItemPayload) Kind() DialogKind         { return DialogEditItem }
func (SharePayload) Kind() DialogKind            { return DialogShare }
func (DeletePayload) Kind() DialogKind           { return DialogDelete }
func (CreateItemPayload) Kind() DialogKind       { return DialogCreateItem }
func (CreateProjectPayload) Kind() DialogKind    { return DialogCreateProject }
func (RequestPayload) Kind() DialogKind          { return DialogRequest }
func (SaveItemsPayload) Kind() DialogKind        { return DialogSaveItems }
func (SelectFilesPayload) Kind() DialogKind      { return DialogSelectFiles }
func (CreateCollectionPayload) Kind() DialogKind { return DialogCreateCollection }
func (RemovePayload) Kind() DialogKind           { return DialogRemove }

// clearsPayloadOnClose lists the dialogs whose next open is independent of
// the last one, so their payload resets to the zero value on close.
var clearsPayloadOnClose = map[DialogKind]bool{
	DialogCreateItem:  true,
	DialogSelectFiles: true,
	DialogSaveItems:   true,
}

// Dialogs tracks the open/closed state and payload of every named dialog.
// At most one instance of each dialog is open; opening one never closes
// another, and it is the prompt layer's job not to overlap them.
type Dialogs struct {
	mutex    sync.Mutex
	open     map[DialogKind]bool
	payloads map[DialogKind]DialogPayload
}

func NewDialogs() *Dialogs {
	return &Dialogs{
		open:     make(map[DialogKind]bool),
		payloads: make(map[DialogKind]DialogPayload),
	}
}

func (d *Dialogs) Open(payload DialogPayload) {
	d.mutex.Lock()
	d.open[payload.Kind()] = true
	d.payloads[payload.Kind()] = payload
	d.mutex.Unlock()
}

func (d *Dialogs) Close(kind DialogKind) {
	d.mutex.Lock()
	d.open[kind] = false

	if clearsPayloadOnClose[kind] {
		delete(d.payloads, kind)
	}

	d.mutex.Unlock()
}

func (d *Dialogs) IsOpen(kind DialogKind) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.open[kind]
}

// Payload returns the stored payload, which dialogs without payload
// clearing keep after close.
func (d *Dialogs) Payload(kind DialogKind) (DialogPayload, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	payload, found := d.payloads[kind]
	return payload, found
}
