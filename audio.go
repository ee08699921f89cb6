package main

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var knownAudioExtensions = []string{"wav", "aif", "aiff", "mp3", "flac", "ogg", "m4a"}

// DetectFormat returns the audio format of the file, preferring the
// extension and falling back to the system mime type.
func DetectFormat(filePath string) string {
	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")

	for _, known := range knownAudioExtensions {
		if extension == known {
			return extension
		}
	}

	fileType, err := GetTypeOfFile(filePath)

	if err == nil && strings.HasPrefix(fileType, "audio/") {
		return strings.TrimPrefix(fileType, "audio/")
	}

	return extension
}

// GetWavDuration reads the RIFF header of a wav file and returns the
// duration in seconds. Non-wav files return ErrNotAWavFile.
func GetWavDuration(filePath string) (float64, error) {
	file, err := os.Open(filepath.Clean(filePath))

	if err != nil {
		return 0, err
	}

	defer func() {
		_ = file.Close()
	}()

	header := make([]byte, 12)
	_, err = io.ReadFull(file, header)

	if err != nil {
		return 0, ErrNotAWavFile
	}

	if string(header[:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, ErrNotAWavFile
	}

	var byteRate uint32
	var dataSize uint32

	chunkHeader := make([]byte, 8)

	for {
		_, err = io.ReadFull(file, chunkHeader)

		if err != nil {
			break
		}

		chunkID := string(chunkHeader[:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			formatChunk := make([]byte, chunkSize)
			_, err = io.ReadFull(file, formatChunk)

			if err != nil || chunkSize < 16 {
				return 0, ErrNotAWavFile
			}

			byteRate = binary.LittleEndian.Uint32(formatChunk[8:12])

		case "data":
			dataSize = chunkSize
			// Skip over the samples to keep scanning for trailing chunks
			_, err = file.Seek(int64(chunkSize), io.SeekCurrent)

			if err != nil {
				return 0, err
			}

		default:
			_, err = file.Seek(int64(chunkSize), io.SeekCurrent)

			if err != nil {
				return 0, err
			}
		}

		// Chunks are word-aligned
		if chunkSize%2 == 1 {
			_, err = file.Seek(1, io.SeekCurrent)

			if err != nil {
				return 0, err
			}
		}

		if byteRate > 0 && dataSize > 0 {
			break
		}
	}

	if byteRate == 0 || dataSize == 0 {
		return 0, ErrNotAWavFile
	}

	return float64(dataSize) / float64(byteRate), nil
}
