// Package roomcode generates the short codes clients use to name rooms.
package roomcode

import (
	nanoid "github.com/jaevor/go-nanoid"

	"pairchat/backend/internal/config"
)

// Alphabet matches what clients display: upper-case letters and digits.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var generate func() string

func init() {
	g, err := nanoid.CustomASCII(Alphabet, config.RoomCodeLength)
	if err != nil {
		// Static alphabet and length; CustomASCII cannot fail here.
		panic(err)
	}
	generate = g
}

// Generate returns a fresh 6-character room code. Codes are suggestions, not
// capabilities: two clients typing the same string land in the same room.
func Generate() string {
	return generate()
}
