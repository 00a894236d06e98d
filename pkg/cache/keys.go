package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// SolveKey derives the cache key for a cost matrix. The matrix is hashed
// in full (SHA-256 over its JSON encoding), so any cell change produces a
// different key; the "solve:" prefix keeps the namespace open for other
// entry kinds.
func SolveKey(matrix [][]int64) string {
	data, _ := json.Marshal(matrix)
	return "solve:" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
