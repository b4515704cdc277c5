package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

func TestValidateMenuItem(t *testing.T) {
	assert.NoError(t, validateMenuItem("Lutefisk", int64ptr(24900)))
	assert.NoError(t, validateMenuItem("Coffee", int64ptr(0)))

	assert.ErrorIs(t, validateMenuItem("", int64ptr(100)), errNameRequired)
	assert.ErrorIs(t, validateMenuItem("   ", int64ptr(100)), errNameRequired)
	assert.ErrorIs(t, validateMenuItem("Soup", nil), errPriceRequired)
	assert.ErrorIs(t, validateMenuItem("Soup", int64ptr(-1)), errPriceNegative)
}

func TestNormalizeOptional(t *testing.T) {
	assert.Nil(t, normalizeOptional(nil))

	empty := "   "
	assert.Nil(t, normalizeOptional(&empty))

	padded := "  with capers  "
	got := normalizeOptional(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "with capers", *got)
}
