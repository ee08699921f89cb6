package main

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWavDuration(t *testing.T) {
	tempTestDataPath := createEmptyTempTestDataPath(t)
	defer os.RemoveAll(tempTestDataPath)

	wavPath := path.Join(tempTestDataPath, "kick.wav")
	writeTestWav(t, wavPath, 2.5)

	duration, err := GetWavDuration(wavPath)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, duration, 0.01)
}

func TestGetWavDurationRejectsNonWav(t *testing.T) {
	tempTestDataPath := createEmptyTempTestDataPath(t)
	defer os.RemoveAll(tempTestDataPath)

	textPath := path.Join(tempTestDataPath, "notes.txt")
	writeTestFile(t, textPath, []byte("not audio at all"))

	_, err := GetWavDuration(textPath)
	assert.ErrorIs(t, err, ErrNotAWavFile)
}

func TestGetWavDurationMissingFile(t *testing.T) {
	_, err := GetWavDuration(path.Join("no", "such", "file.wav"))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "wav", DetectFormat("kick.wav"))
	assert.Equal(t, "wav", DetectFormat(path.Join("Drums", "Snare.WAV")))
	assert.Equal(t, "mp3", DetectFormat("bounce.Mp3"))
	assert.Equal(t, "flac", DetectFormat("master.flac"))
}
