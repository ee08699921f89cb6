// Package catalog is the durable item catalog. It owns the authoritative
// records; the in-memory session mirror is rebuilt from it on every sync.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wavevault/models"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrNameRequired       = errors.New("item name is required")
	ErrNameTooLong        = errors.New("item name exceeds the maximum length")
	ErrUnknownKind        = errors.New("unknown item kind")
	ErrParentNotAFolder   = errors.New("parent must be an existing folder")
	ErrProjectHasParent   = errors.New("projects cannot have a parent folder")
	ErrParentIsDescendant = errors.New("cannot move a folder into its own descendant")
	ErrFileFieldsOnFolder = errors.New("size, duration and format are file-only attributes")
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AutoMigrate creates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Item{})
}

// CreateItem validates and stores a new item, assigning its ID and
// timestamps. The returned item is what callers mirror into the session
// store once the catalog has accepted it.
func (s *Service) CreateItem(item models.Item) (models.Item, error) {
	if err := validateName(item.Name); err != nil {
		return models.Item{}, err
	}

	switch item.Kind {
	case models.KindFile, models.KindFolder, models.KindProject:
	default:
		return models.Item{}, ErrUnknownKind
	}

	if item.Kind == models.KindProject && len(item.ParentFolderIDs) > 0 {
		return models.Item{}, ErrProjectHasParent
	}

	if !item.IsFile() && (item.Size != nil || item.Duration != nil || item.Format != nil) {
		return models.Item{}, ErrFileFieldsOnFolder
	}

	if parentID := item.ParentFolderID(); parentID != "" {
		if err := s.checkParentFolder(parentID); err != nil {
			return models.Item{}, err
		}
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	now := time.Now()
	item.CreatedAt = now
	item.ModifiedAt = now
	item.OpenedAt = now
	item.ParentID = item.ParentFolderID()

	result := s.db.Create(&item)

	if result.Error != nil {
		return models.Item{}, result.Error
	}

	return item, nil
}

func (s *Service) GetItem(id string) (models.Item, error) {
	var item models.Item
	result := s.db.Where("id = ?", id).First(&item)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Item{}, ErrItemNotFound
	}

	if result.Error != nil {
		return models.Item{}, result.Error
	}

	return item, nil
}

// ListItems returns the files and folders under the given folder; an empty
// parent ID lists the root.
func (s *Service) ListItems(parentID string) ([]models.Item, error) {
	var items []models.Item
	result := s.db.Where("kind <> ? AND parent_id = ?", models.KindProject, parentID).Order("kind desc, name").Find(&items)

	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (s *Service) ListProjects() ([]models.Item, error) {
	var items []models.Item
	result := s.db.Where("kind = ?", models.KindProject).Order("name").Find(&items)

	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// ListAll returns every item; the session mirror hydrates from this.
func (s *Service) ListAll() ([]models.Item, error) {
	var items []models.Item
	result := s.db.Order("kind desc, name").Find(&items)

	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// UpdateItem merges the partial update into the stored item and bumps its
// modified timestamp. Reparenting a folder into its own descendant is
// rejected.
func (s *Service) UpdateItem(id string, update models.ItemUpdate) (models.Item, error) {
	item, err := s.GetItem(id)

	if err != nil {
		return models.Item{}, err
	}

	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			return models.Item{}, err
		}
	}

	if update.ParentFolderIDs != nil && len(*update.ParentFolderIDs) > 0 {
		if item.Kind == models.KindProject {
			return models.Item{}, ErrProjectHasParent
		}

		newParentID := (*update.ParentFolderIDs)[0]

		if err := s.checkParentFolder(newParentID); err != nil {
			return models.Item{}, err
		}

		if item.IsFolder() {
			if err := s.checkNotDescendant(item.ID, newParentID); err != nil {
				return models.Item{}, err
			}
		}
	}

	if !item.IsFile() && (update.Size != nil || update.Duration != nil || update.Format != nil) {
		return models.Item{}, ErrFileFieldsOnFolder
	}

	update.Apply(&item)
	item.ModifiedAt = time.Now()
	item.ParentID = item.ParentFolderID()

	result := s.db.Save(&item)

	if result.Error != nil {
		return models.Item{}, result.Error
	}

	return item, nil
}

// DeleteItem removes the record. Children of a deleted folder are left in
// place; this catalog performs no cascade.
func (s *Service) DeleteItem(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Item{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// ShareItem adds the users to the item's collaborator list, deduplicated.
func (s *Service) ShareItem(id string, users []string) (models.Item, error) {
	item, err := s.GetItem(id)

	if err != nil {
		return models.Item{}, err
	}

	for _, user := range users {
		if user == "" || item.Collaborators.Contains(user) {
			continue
		}

		item.Collaborators = append(item.Collaborators, user)
	}

	item.ModifiedAt = time.Now()
	result := s.db.Save(&item)

	if result.Error != nil {
		return models.Item{}, result.Error
	}

	return item, nil
}

func (s *Service) SetStarred(id string, starred bool) error {
	result := s.db.Model(&models.Item{}).Where("id = ?", id).Update("starred", starred)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// RecordOpened stamps the last-opened time.
func (s *Service) RecordOpened(id string) error {
	result := s.db.Model(&models.Item{}).Where("id = ?", id).Update("opened_at", time.Now())

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// CountBlobReferences reports how many items still point at the blob
// address. Identical files share a blob, so deletion waits for zero.
func (s *Service) CountBlobReferences(address string) (int64, error) {
	var count int64
	result := s.db.Model(&models.Item{}).Where("blob_address = ?", address).Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (s *Service) checkParentFolder(parentID string) error {
	parent, err := s.GetItem(parentID)

	if err != nil {
		return ErrParentNotAFolder
	}

	if !parent.IsFolder() {
		return ErrParentNotAFolder
	}

	return nil
}

// checkNotDescendant walks up from the new parent; hitting the folder
// being moved means the move would create a cycle.
func (s *Service) checkNotDescendant(folderID, newParentID string) error {
	currentID := newParentID

	for currentID != "" {
		if currentID == folderID {
			return ErrParentIsDescendant
		}

		current, err := s.GetItem(currentID)

		if err != nil {
			return nil
		}

		currentID = current.ParentFolderID()
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	if len(name) > models.MaxNameLength {
		return ErrNameTooLong
	}

	return nil
}
