package game

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomCode(t *testing.T) {
	format := regexp.MustCompile("^[A-Z0-9]{6}$")

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := newRoomCode()
		assert.Regexp(t, format, code)
		seen[code] = struct{}{}
	}

	// Not a uniqueness guarantee, but 1000 draws from 36^6 should
	// essentially never all land on a handful of values.
	assert.Greater(t, len(seen), 990)
}
