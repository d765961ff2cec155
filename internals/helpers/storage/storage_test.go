package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueFilename(t *testing.T) {
	name := GenerateUniqueFilename("projects", "my bike (final).jpg")

	assert.True(t, strings.HasPrefix(name, "projects/"))
	assert.True(t, strings.HasSuffix(name, ".webp"))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	// Two uploads of the same file never collide.
	assert.NotEqual(t, name, GenerateUniqueFilename("projects", "my bike (final).jpg"))
}
