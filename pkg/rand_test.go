package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandString(t *testing.T) {
	for _, length := range []int{-1, 0, 3, 8, 32} {
		str := RandString(length)
		if length <= 0 {
			assert.Empty(t, str)
			continue
		}

		assert.Len(t, str, length)
		for _, r := range str {
			assert.True(t, strings.ContainsRune(randLetters, r), "unexpected rune %q", r)
		}
	}
}
