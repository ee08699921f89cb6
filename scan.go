package main

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"wavevault/utils"
)

type FileEntry struct {
	Name string
	Path string
	Size int64
}

type FolderTree struct {
	Name    string
	Path    string
	Folders []*FolderTree
	Files   []FileEntry
}

func (tree *FolderTree) FileCount() int64 {
	count := int64(len(tree.Files))

	for _, folder := range tree.Folders {
		count += folder.FileCount()
	}

	return count
}

func (tree *FolderTree) TotalSize() int64 {
	size := int64(0)

	for _, file := range tree.Files {
		size += file.Size
	}

	for _, folder := range tree.Folders {
		size += folder.TotalSize()
	}

	return size
}

// ScanDirectory walks the local directory and builds the folder tree that
// an upload will recreate in the catalog. Ignored file and folder names
// come from the config.
func (ctx *Context) ScanDirectory(rootPath string) (*FolderTree, error) {
	absoluteRootPath, err := filepath.Abs(rootPath)

	if err != nil {
		return nil, ErrCouldNotResolvePath
	}

	if !IsDir(absoluteRootPath) {
		return nil, ErrCouldNotResolvePath
	}

	root := &FolderTree{
		Name: filepath.Base(absoluteRootPath),
		Path: absoluteRootPath,
	}

	folders := map[string]*FolderTree{absoluteRootPath: root}

	err = filepath.WalkDir(absoluteRootPath, func(thisPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if thisPath == absoluteRootPath {
			return nil
		}

		parent := folders[filepath.Dir(thisPath)]

		if d.IsDir() {
			if utils.IsInArray(d.Name(), ctx.Config.FolderNamesToIgnore) {
				return filepath.SkipDir
			}

			folder := &FolderTree{
				Name: d.Name(),
				Path: thisPath,
			}

			folders[thisPath] = folder
			parent.Folders = append(parent.Folders, folder)
			return nil
		}

		if utils.IsInArray(d.Name(), ctx.Config.FileNamesToIgnore) {
			return nil
		}

		info, err := d.Info()

		if err != nil {
			return err
		}

		parent.Files = append(parent.Files, FileEntry{
			Name: d.Name(),
			Path: thisPath,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return root, nil
}

// CreateFolderStructure recreates the scanned folder tree on disk
// under the base path. Files are not written, only their folders.
func CreateFolderStructure(tree *FolderTree, basePath string) error {
	folderPath := path.Join(basePath, tree.Name)
	err := os.MkdirAll(folderPath, 0750)

	if err != nil {
		return err
	}

	for _, folder := range tree.Folders {
		err = CreateFolderStructure(folder, folderPath)

		if err != nil {
			return err
		}
	}

	return nil
}
