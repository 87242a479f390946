package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	for _, raw := range []string{"", "work", "Work", "CHORES"} {
		_, err := ParseCategory(raw)
		assert.Error(t, err, raw)
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range Priorities() {
		parsed, err := ParsePriority(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	for _, raw := range []string{"", "low", "Medium", "URGENT"} {
		_, err := ParsePriority(raw)
		assert.Error(t, err, raw)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Work", CategoryWork.Label())
	assert.Equal(t, "Other", CategoryOther.Label())
	assert.Equal(t, "Medium", PriorityMedium.Label())
}
