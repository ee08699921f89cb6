// Package blob is the content-addressed upload store. An address is the
// base58 BLAKE2b hash of the content and maps to <root>/ab/cd/<rest>, so
// identical uploads land on the same blob.
package blob

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"

	"wavevault/crypto"
)

var (
	ErrBlobNotFound    = errors.New("blob not found")
	ErrAddressTooShort = errors.New("blob address is too short")
)

type Store struct {
	root string
}

func Open(root string) (*Store, error) {
	absRoot, err := filepath.Abs(root)

	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(absRoot, 0700); err != nil {
		return nil, err
	}

	return &Store{root: absRoot}, nil
}

// RelativePathForAddress shards an address over two directory levels to
// keep directory fan-out small.
func RelativePathForAddress(address string) (string, error) {
	if len(address) < 5 {
		return "", ErrAddressTooShort
	}

	return path.Join(address[:2], address[2:4], address[4:]), nil
}

// Put stores the file at filePath and returns its address. Re-uploading
// existing content is a no-op.
func (s *Store) Put(filePath string) (string, error) {
	address, err := crypto.HashFile(filePath)

	if err != nil {
		return "", err
	}

	source, err := os.Open(path.Clean(filePath))

	if err != nil {
		return "", err
	}

	defer source.Close()

	err = s.write(address, source)

	if err != nil {
		return "", err
	}

	return address, nil
}

// PutBytes stores in-memory content and returns its address.
func (s *Store) PutBytes(data []byte) (string, error) {
	address, err := crypto.HashBytes(data)

	if err != nil {
		return "", err
	}

	blobPath, err := s.blobPath(address)

	if err != nil {
		return "", err
	}

	if _, err := os.Stat(blobPath); err == nil {
		return address, nil
	}

	if err := os.MkdirAll(filepath.Dir(blobPath), 0700); err != nil {
		return "", err
	}

	if err := os.WriteFile(blobPath, data, 0600); err != nil {
		return "", err
	}

	return address, nil
}

// Open returns a reader over the blob. The caller closes it.
func (s *Store) Open(address string) (io.ReadCloser, error) {
	blobPath, err := s.blobPath(address)

	if err != nil {
		return nil, err
	}

	file, err := os.Open(blobPath)

	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}

	if err != nil {
		return nil, err
	}

	return file, nil
}

// Copy writes the blob to the destination path, creating directories as
// needed.
func (s *Store) Copy(address, destination string) error {
	source, err := s.Open(address)

	if err != nil {
		return err
	}

	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(destination), 0700); err != nil {
		return err
	}

	target, err := os.Create(path.Clean(destination))

	if err != nil {
		return err
	}

	_, err = io.Copy(target, source)

	closeErr := target.Close()

	if err != nil {
		return err
	}

	return closeErr
}

func (s *Store) Delete(address string) error {
	blobPath, err := s.blobPath(address)

	if err != nil {
		return err
	}

	err = os.Remove(blobPath)

	if errors.Is(err, os.ErrNotExist) {
		return ErrBlobNotFound
	}

	return err
}

func (s *Store) Exists(address string) bool {
	blobPath, err := s.blobPath(address)

	if err != nil {
		return false
	}

	_, err = os.Stat(blobPath)
	return err == nil
}

func (s *Store) write(address string, source io.Reader) error {
	blobPath, err := s.blobPath(address)

	if err != nil {
		return err
	}

	// Content addressing: an existing blob already has this content
	if _, err := os.Stat(blobPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(blobPath), 0700); err != nil {
		return err
	}

	target, err := os.Create(blobPath)

	if err != nil {
		return err
	}

	_, err = io.Copy(target, source)

	closeErr := target.Close()

	if err != nil {
		return err
	}

	return closeErr
}

func (s *Store) blobPath(address string) (string, error) {
	relative, err := RelativePathForAddress(address)

	if err != nil {
		return "", err
	}

	return path.Join(s.root, relative), nil
}
