package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs sort lexicographically by creation
// time, which the email-code table relies on to find the newest record.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
