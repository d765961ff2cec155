package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewEntityID(t *testing.T) {
	assert.True(t, IsNewEntityID(""))
	assert.True(t, IsNewEntityID("new_1719820000000"))
	assert.True(t, IsNewEntityID("new_"))
	assert.False(t, IsNewEntityID("2f1d9c1e-7b0a-4f63-9a3e-bb1a2c3d4e5f"))
	assert.False(t, IsNewEntityID("renewed_1"))
}
