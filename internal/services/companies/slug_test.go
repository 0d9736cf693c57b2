package companies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Test Company", "test-company"},
		{"TestV2", "testv2"},
		{"Apple Computer", "apple-computer"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Ünïcode & Sons", "unicode-and-sons"},
		{"Dots. And, Punctuation!", "dots-and-punctuation"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveCode(tc.name), "name %q", tc.name)
	}
}

func TestDeriveCodeIdempotent(t *testing.T) {
	// Same name always yields the same code, and a derived code re-derives
	// to itself.
	assert.Equal(t, DeriveCode("Test Company"), DeriveCode("Test Company"))
	assert.Equal(t, "test-company", DeriveCode(DeriveCode("Test Company")))
}
