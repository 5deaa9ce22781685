package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockResolverExactMatch(t *testing.T) {
	r := NewMockResolver()

	got := r.Resolve("Dune", "Frank Herbert", "science fiction")
	assert.Equal(t, curatedSummaries["Dune"], got)
}

func TestMockResolverSubstringMatch(t *testing.T) {
	r := NewMockResolver()

	t.Run("query contains curated title", func(t *testing.T) {
		got := r.Resolve("the martian: classroom edition", "", "")
		assert.Equal(t, curatedSummaries["The Martian"], got)
	})

	t.Run("curated title contains query", func(t *testing.T) {
		got := r.Resolve("Prejudice", "", "")
		assert.Equal(t, curatedSummaries["Pride and Prejudice"], got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := r.Resolve("dune", "", "")
		assert.Equal(t, curatedSummaries["Dune"], got)
	})
}

func TestMockResolverGenericFallback(t *testing.T) {
	r := NewMockResolver()

	t.Run("with author and genre", func(t *testing.T) {
		got := r.Resolve("The Wind-Up Bird Chronicle", "Haruki Murakami", "surrealism")
		assert.NotEmpty(t, got)
		assert.Contains(t, got, "The Wind-Up Bird Chronicle")
		assert.Contains(t, got, "Haruki Murakami")
		assert.Contains(t, got, "surrealism")
	})

	t.Run("missing author and genre", func(t *testing.T) {
		got := r.Resolve("Some Unknown Book", "", "")
		assert.NotEmpty(t, got)
		assert.Contains(t, got, "the author")
		assert.True(t, strings.HasPrefix(got, "This interesting book"))
	})
}

func TestMockResolverNeverEmpty(t *testing.T) {
	r := NewMockResolver()
	for _, title := range []string{"x", "The Hobbit", "1984", "zzz no match"} {
		assert.NotEmpty(t, r.Resolve(title, "", ""))
	}
}
