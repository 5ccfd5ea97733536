package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailIsValid(t *testing.T) {
	cases := []struct {
		email Email
		want  bool
	}{
		{"ada@example.com", true},
		{"a@b", true},
		{"", false},
		{"@example.com", false},
		{"ada@", false},
		{"no-at-sign", false},
		{"spaced out@example.com", false},
	}

	for _, c := range cases {
		t.Run(string(c.email), func(t *testing.T) {
			assert.Equal(t, c.want, c.email.IsValid())
		})
	}
}

func TestFullNameIsEmpty(t *testing.T) {
	assert.True(t, FullName("").IsEmpty())
	assert.True(t, FullName("   ").IsEmpty())
	assert.False(t, FullName("Ada").IsEmpty())
}

func TestCandidateID(t *testing.T) {
	id := NewCandidateID("c-123")
	assert.False(t, id.IsEmpty())
	assert.Equal(t, "c-123", id.String())
	assert.True(t, CandidateID("").IsEmpty())
}
