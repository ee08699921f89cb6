package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"wavevault/blob"
	"wavevault/catalog"
	"wavevault/config"
	"wavevault/localstate"
	"wavevault/state"
)

func createEmptyTempTestDataPath(t *testing.T) string {
	tempTestDataPath, err := os.MkdirTemp("", "wavevault-")
	assert.NoError(t, err)

	tempTestDataAbsolutePath, err := filepath.Abs(tempTestDataPath)
	assert.NoError(t, err)

	return tempTestDataAbsolutePath
}

// scriptedPrompter answers every dialog confirmation with a fixed answer.
type scriptedPrompter struct {
	answer bool
}

func (p *scriptedPrompter) Confirm(dialogs *state.Dialogs, kind state.DialogKind) bool {
	if !dialogs.IsOpen(kind) {
		return false
	}

	return p.answer
}

func newTestContext(t *testing.T) (*Context, string) {
	workPath := createEmptyTempTestDataPath(t)

	t.Cleanup(func() {
		_ = os.RemoveAll(workPath)
	})

	c := &config.Config{
		DBPath:                      path.Join(workPath, "catalog.db"),
		BlobDataPath:                path.Join(workPath, "blobs"),
		LocalStatePath:              path.Join(workPath, "state.db"),
		UserID:                      "test-user",
		BatchSize:                   5,
		MaxConcurrentFileOperations: 2,
		FileNamesToIgnore:           []string{".DS_Store"},
		FolderNamesToIgnore:         []string{".git"},
	}

	blobs, err := blob.Open(c.BlobDataPath)
	assert.NoError(t, err)

	local, err := localstate.Open(c.LocalStatePath)
	assert.NoError(t, err)

	t.Cleanup(func() {
		_ = local.Close()
	})

	db := initDb(c)

	return &Context{
		Config:   c,
		DB:       db,
		Catalog:  catalog.New(db),
		Blobs:    blobs,
		Local:    local,
		Items:    state.NewItemStore(),
		Nav:      state.NewNavigationHistory(local),
		Dialogs:  state.NewDialogs(),
		Prompter: &scriptedPrompter{answer: true},
		Billing:  NewHostedCheckout("https://pay.example.com/checkout", "https://pay.example.com/billing"),
	}, workPath
}

func writeTestFile(t *testing.T, filePath string, data []byte) {
	err := os.MkdirAll(filepath.Dir(filePath), 0750)
	assert.NoError(t, err)

	err = os.WriteFile(filePath, data, 0600)
	assert.NoError(t, err)
}

// writeTestWav writes a minimal PCM wav of the given duration: 8kHz,
// mono, 16-bit, so one second of audio is 16,000 data bytes.
func writeTestWav(t *testing.T, filePath string, seconds float64) {
	const byteRate = 16000

	dataSize := uint32(seconds * byteRate)

	buffer := &bytes.Buffer{}
	buffer.WriteString("RIFF")
	_ = binary.Write(buffer, binary.LittleEndian, uint32(36+dataSize))
	buffer.WriteString("WAVE")
	buffer.WriteString("fmt ")
	_ = binary.Write(buffer, binary.LittleEndian, uint32(16))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(8000))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(2))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(16))
	buffer.WriteString("data")
	_ = binary.Write(buffer, binary.LittleEndian, dataSize)
	buffer.Write(make([]byte, dataSize))

	writeTestFile(t, filePath, buffer.Bytes())
}
