// Package receipt stamps ledger activity with simulated transaction hashes.
package receipt

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// HashLen is the length of a stamped hash including the 0x prefix.
const HashLen = 66

// Stamp returns a Keccak-256 hash over kind, fields, the current time and a
// random salt, formatted like an Ethereum transaction hash.
func Stamp(kind string, fields ...any) string {
	var b strings.Builder
	b.WriteString(kind)
	for _, f := range fields {
		fmt.Fprintf(&b, "|%v", f)
	}
	fmt.Fprintf(&b, "|%d|", time.Now().UnixNano())

	salt := make([]byte, 16)
	_, _ = rand.Read(salt)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(b.String()))
	h.Write(salt)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// Valid reports whether s looks like a stamped hash.
func Valid(s string) bool {
	if len(s) != HashLen || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}
