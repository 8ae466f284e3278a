package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"lukechampine.com/blake3"
)

type HashAlgo string

const (
	HashAlgoSHA256 HashAlgo = "sha256"
	HashAlgoBLAKE3 HashAlgo = "blake3"
)

// Digest returns "<algo>:<hex>" for data using the specified algorithm.
// Supported algorithms: "sha256" and "blake3".
func Digest(data []byte, algo HashAlgo) (string, error) {
	switch algo {
	case HashAlgoSHA256:
		hash := sha256.Sum256(data)
		return string(algo) + ":" + hex.EncodeToString(hash[:]), nil
	case HashAlgoBLAKE3:
		hash := blake3.Sum256(data)
		return string(algo) + ":" + hex.EncodeToString(hash[:]), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algo)
	}
}

// MessageKey derives a stable cache key for a message under a render
// policy. The policy byte is folded into the digest so the same message
// rendered with and without raw HTML never collides.
func MessageKey(message string, allowRawHTML bool) string {
	h := blake3.New(32, nil)
	if allowRawHTML {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write([]byte(message))
	return string(HashAlgoBLAKE3) + ":" + hex.EncodeToString(h.Sum(nil))
}
