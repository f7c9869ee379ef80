// Package utils provides helpers for confirmation codes and signed
// ticket tokens.
package utils

import (
	"crypto/rand"
	"math/big"
	"time"
)

const pnrAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewPNR returns a confirmation code in the backend's established
// format: "AT-" + sale date (YYYYMMDD) + "-" + three random
// alphanumeric characters.  Codes are not guaranteed unique; the mock
// backend never deduplicates sales, so collisions are tolerated the
// same way duplicates are.
func NewPNR(now time.Time) (string, error) {
	alphabetLen := big.NewInt(int64(len(pnrAlphabet)))
	suffix := make([]byte, 3)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		suffix[i] = pnrAlphabet[n.Int64()]
	}
	return "AT-" + now.Format("20060102") + "-" + string(suffix), nil
}
