package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ItemKind string

const (
	KindFile    ItemKind = "file"
	KindFolder  ItemKind = "folder"
	KindProject ItemKind = "project"
)

// MaxNameLength bounds item names; the catalog rejects anything longer.
const MaxNameLength = 255

// StringList is a JSON-encoded list of IDs stored in a single text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal(l)

	if err != nil {
		return nil, err
	}

	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	}

	return errors.New("unsupported column type for StringList")
}

func (l StringList) Contains(s string) bool {
	for _, entry := range l {
		if entry == s {
			return true
		}
	}

	return false
}

// TagSet is the optional structured metadata on an item.
type TagSet struct {
	FileType    string   `json:"file_type,omitempty"`
	Status      string   `json:"status,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Versions    []string `json:"versions,omitempty"`
}

func (t TagSet) Value() (driver.Value, error) {
	data, err := json.Marshal(t)

	if err != nil {
		return nil, err
	}

	return string(data), nil
}

func (t *TagSet) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = TagSet{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), t)
	case []byte:
		return json.Unmarshal(v, t)
	}

	return errors.New("unsupported column type for TagSet")
}

// Item is a file, folder or project in the user's collection. The same
// struct is the catalog record (gorm) and the in-memory mirror entry.
type Item struct {
	ID              string     `gorm:"primarykey" json:"id"`
	Name            string     `json:"name"`
	Kind            ItemKind   `gorm:"index" json:"kind"`
	CreatedAt       time.Time  `json:"created_at"`
	ModifiedAt      time.Time  `json:"modified_at"`
	OpenedAt        time.Time  `json:"opened_at"`
	Starred         bool       `json:"starred"`
	ParentFolderIDs StringList `gorm:"type:text" json:"parent_folder_ids"`
	ProjectIDs      StringList `gorm:"type:text" json:"project_ids"`
	OwnerID         string     `gorm:"index" json:"owner_id"`
	Collaborators   StringList `gorm:"type:text" json:"collaborators"`
	Tags            *TagSet    `gorm:"type:text" json:"tags,omitempty"`

	// File-only attributes. Nil for folders and projects.
	Size     *int64   `json:"size,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Format   *string  `json:"format,omitempty"`

	// Blob store address of the uploaded content. Files only.
	BlobAddress string `json:"blob_address,omitempty"`

	// ParentID mirrors the first parent folder ID as an indexed scalar
	// column so folder listings can query it directly.
	ParentID string `gorm:"index" json:"-"`
}

// ParentFolderID returns the single optional parent this model allows.
func (i *Item) ParentFolderID() string {
	if len(i.ParentFolderIDs) == 0 {
		return ""
	}

	return i.ParentFolderIDs[0]
}

func (i *Item) IsFile() bool {
	return i.Kind == KindFile
}

func (i *Item) IsFolder() bool {
	return i.Kind == KindFolder
}

// NavigationStep is one visited folder in the breadcrumb history.
type NavigationStep struct {
	FolderID  string    `json:"id"`
	Name      string    `json:"name"`
	VisitedAt time.Time `json:"timestamp"`
}

// ItemUpdate carries the fields a partial update may change. Nil fields
// are left untouched.
type ItemUpdate struct {
	Name            *string
	Starred         *bool
	OpenedAt        *time.Time
	ParentFolderIDs *StringList
	ProjectIDs      *StringList
	Collaborators   *StringList
	Tags            *TagSet
	Size            *int64
	Duration        *float64
	Format          *string
}

// Apply merges the update into the item in place.
func (u ItemUpdate) Apply(item *Item) {
	if u.Name != nil {
		item.Name = *u.Name
	}

	if u.Starred != nil {
		item.Starred = *u.Starred
	}

	if u.OpenedAt != nil {
		item.OpenedAt = *u.OpenedAt
	}

	if u.ParentFolderIDs != nil {
		item.ParentFolderIDs = *u.ParentFolderIDs
	}

	if u.ProjectIDs != nil {
		item.ProjectIDs = *u.ProjectIDs
	}

	if u.Collaborators != nil {
		item.Collaborators = *u.Collaborators
	}

	if u.Tags != nil {
		tags := *u.Tags
		item.Tags = &tags
	}

	if u.Size != nil {
		item.Size = u.Size
	}

	if u.Duration != nil {
		item.Duration = u.Duration
	}

	if u.Format != nil {
		item.Format = u.Format
	}
}
