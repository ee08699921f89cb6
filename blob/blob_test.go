package blob

import (
	"io"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	store, err := Open(path.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)

	return store
}

func TestPutAndOpenRoundTrip(t *testing.T) {
	store := testStore(t)

	filePath := path.Join(t.TempDir(), "kick.wav")
	require.NoError(t, os.WriteFile(filePath, []byte("audio bytes"), 0600))

	address, err := store.Put(filePath)
	assert.NoError(t, err)
	assert.True(t, store.Exists(address))

	reader, err := store.Open(address)
	assert.NoError(t, err)

	content, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.NoError(t, reader.Close())
	assert.Equal(t, []byte("audio bytes"), content)
}

func TestPutBytesDeduplicatesByContent(t *testing.T) {
	store := testStore(t)

	first, err := store.PutBytes([]byte("same content"))
	assert.NoError(t, err)

	second, err := store.PutBytes([]byte("same content"))
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := store.PutBytes([]byte("different content"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestCopyWritesBlobToDestination(t *testing.T) {
	store := testStore(t)

	address, err := store.PutBytes([]byte("stems"))
	require.NoError(t, err)

	destination := path.Join(t.TempDir(), "nested", "dir", "stems.wav")
	assert.NoError(t, store.Copy(address, destination))

	content, err := os.ReadFile(destination)
	assert.NoError(t, err)
	assert.Equal(t, []byte("stems"), content)
}

func TestDeleteRemovesBlob(t *testing.T) {
	store := testStore(t)

	address, err := store.PutBytes([]byte("to delete"))
	require.NoError(t, err)

	assert.NoError(t, store.Delete(address))
	assert.False(t, store.Exists(address))
	assert.ErrorIs(t, store.Delete(address), ErrBlobNotFound)

	_, err = store.Open(address)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestRelativePathForAddress(t *testing.T) {
	relative, err := RelativePathForAddress("abcdef")
	assert.NoError(t, err)
	assert.Equal(t, path.Join("ab", "cd", "ef"), relative)

	_, err = RelativePathForAddress("abcd")
	assert.ErrorIs(t, err, ErrAddressTooShort)
}
