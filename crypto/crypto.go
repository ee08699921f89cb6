package crypto

import (
	"bytes"
	"io"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// https://crypto.stackexchange.com/a/89559
// BLAKE2b is faster than SHA-512 and collision resistant. 64 bytes of
// digest encode to 87-88 characters of Base-58, which is what the blob
// store uses as an address.
func HashReader(r io.Reader) (string, error) {
	hash, err := blake2b.New512([]byte{})

	if err != nil {
		return "", err
	}

	buffer := make([]byte, 4096)

	for {
		size, err := r.Read(buffer)

		if err != nil && err != io.EOF {
			return "", err
		}

		if err == io.EOF {
			break
		}

		hash.Write(buffer[0:size])
	}

	return base58.Encode(hash.Sum(nil)), nil
}

func HashFile(filePath string) (string, error) {
	file, err := os.Open(path.Clean(filePath))

	if err != nil {
		return "", err
	}

	hash, err := HashReader(file)

	closeErr := file.Close()

	if err != nil {
		return "", err
	}

	return hash, closeErr
}

func HashBytes(data []byte) (string, error) {
	return HashReader(bytes.NewReader(data))
}
