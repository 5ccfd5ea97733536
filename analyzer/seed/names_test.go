package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameGeneratorDeterministic(t *testing.T) {
	a := NewNameGenerator(42)
	b := NewNameGenerator(42)

	for i := 0; i < 50; i++ {
		nameA, emailA, phoneA := a.Next()
		nameB, emailB, phoneB := b.Next()
		assert.Equal(t, nameA, nameB)
		assert.Equal(t, emailA, emailB)
		assert.Equal(t, phoneA, phoneB)
	}
}

func TestNameGeneratorEmailsNeverCollide(t *testing.T) {
	g := NewNameGenerator(1)
	seen := map[string]bool{}

	for i := 0; i < 1000; i++ {
		_, email, _ := g.Next()
		require.False(t, seen[email.String()], "duplicate email %s", email)
		seen[email.String()] = true
	}
}

func TestNameGeneratorShape(t *testing.T) {
	g := NewNameGenerator(7)
	name, email, phone := g.Next()

	assert.True(t, email.IsValid())
	assert.True(t, strings.HasSuffix(email.String(), "@example.com"))
	assert.False(t, name.IsEmpty())
	assert.True(t, strings.HasPrefix(phone.String(), "+1-555-"))
	assert.Len(t, strings.Split(name.String(), " "), 2)
}
