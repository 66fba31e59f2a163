package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProjectID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ProjectID
	}{
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"numeric", "4", "proj4"},
		{"canonical", "proj12", "proj12"},
		{"padded numeric", " 7 ", "proj7"},
		{"name passthrough", "Marketing Campaign", "Marketing Campaign"},
		{"uppercase prefix is not canonical", "PROJ3", "PROJ3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProjectID(tt.in))
		})
	}
}

func TestCanonicalProjectID(t *testing.T) {
	assert.Equal(t, ProjectID("proj1"), CanonicalProjectID(1))
	assert.Equal(t, "proj42", CanonicalProjectID(42).String())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0012"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric("1.5"))
}
