package game

import "math/rand"

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// How many times create retries a colliding room code before giving up. The
// keyspace is 36^6 so a second collision in a row is already astronomical.
const maxCodeAttempts = 5

// newRoomCode returns a short human-enterable room code. Uniqueness is
// enforced by the store's unique constraint, not here.
func newRoomCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
