package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("full metadata", func(t *testing.T) {
		p := BuildPrompt("Dune", "Frank Herbert", "science fiction")
		assert.Contains(t, p, "Title: Dune")
		assert.Contains(t, p, "Author: Frank Herbert")
		assert.Contains(t, p, "Genre: science fiction")
		assert.Contains(t, p, "elements common in science fiction novels")
		assert.Contains(t, p, "single paragraph in plain text")
	})

	t.Run("missing author and genre", func(t *testing.T) {
		p := BuildPrompt("Dune", "", "")
		assert.Contains(t, p, "Author: Unknown")
		assert.Contains(t, p, "Genre: Not specified")
		assert.Contains(t, p, "the novel's unique style")
	})
}
