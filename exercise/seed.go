package exercise

import (
	"crypto/sha256"
	"encoding/binary"
)

// deriveSeed maps (seed, problem id, version, salt) to a stable int64 seed.
func deriveSeed(seed, problemID, version, salt string) int64 {
	h := sha256.Sum256([]byte(seed + "|" + problemID + "|" + version + "|" + salt))
	v := int64(binary.LittleEndian.Uint64(h[:8]))
	if v < 0 {
		v = -v
	}
	return v
}
