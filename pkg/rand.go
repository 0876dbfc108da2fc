package pkg

import (
	"math/rand/v2"
	"strings"
)

const randLetters = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandString returns n random lowercase alphanumerics, usable in container
// names and amqp consumer tags. Not for secrets.
func RandString(n int) string {
	if n <= 0 {
		return ""
	}

	var builder strings.Builder
	builder.Grow(n)
	for range n {
		builder.WriteByte(randLetters[rand.IntN(len(randLetters))]) //nolint:gosec
	}
	return builder.String()
}
