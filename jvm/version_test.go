package jvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionMajor(t *testing.T) {
	assert.Equal(t, 45, V1_0.Major())
	assert.Equal(t, 52, V8.Major())
	assert.Equal(t, 53, V9.Major())
	assert.Equal(t, 60, V16.Major())
	assert.Equal(t, 61, V17.Major())
	assert.Equal(t, 69, V25.Major())
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		v, other Version
		expected bool
	}{
		{V9, V9, true},
		{V10, V9, true},
		{V8, V9, false},
		{V25, V1_0, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.v.AtLeast(tc.other),
			"v: %s, other: %s", tc.v, tc.other)
	}
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, -1, V8.Compare(V9))
	assert.Equal(t, 0, V9.Compare(V9))
	assert.Equal(t, 1, V10.Compare(V9))
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v        Version
		expected string
	}{
		{V1_0, "1.0"},
		{V1_4, "1.4"},
		{V5, "5"},
		{V8, "8"},
		{V17, "17"},
		{V25, "25"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.v.String())
	}
}

func TestFeatureGates(t *testing.T) {
	assert.Equal(t, V9, VersionModules)
	assert.Equal(t, V16, VersionRecords)
	assert.Equal(t, V17, VersionSealed)
}
