package code

import (
	"math/rand"
	"strings"
)

// Length is the number of characters in a verification code.
const Length = 4

const digits = "0123456789"

// Generate returns a Length-digit verification code. Characters are drawn
// without replacement from a pool holding every digit Length times, so a
// digit may repeat but never more than Length times.
func Generate() string {
	pool := []byte(strings.Repeat(digits, Length))
	for i := 0; i < Length; i++ {
		j := i + rand.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:Length])
}
