package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectEmpty(t *testing.T) {
	assert.Equal(t, emptyReflection, Reflect(""))
	assert.Equal(t, emptyReflection, Reflect("   "))
}

func TestReflectThemed(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		theme string
	}{
		{"work", "The office meeting about the project dragged on, work never ends", ThemeWork},
		{"relationships", "Spent the evening with family and a close friend", ThemeRelationships},
		{"stress", "Everything is so difficult, I feel worried and anxious about it all", ThemeStress},
		{"joy", "What an amazing, wonderful day full of happy moments", ThemeJoy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.text)
			assert.Contains(t, themeReflections[tt.theme], got)
		})
	}
}

func TestReflectLongEntry(t *testing.T) {
	// No theme keywords, more than 150 words.
	text := strings.Repeat("the quiet river moved past slow boats near tall reeds ", 20)
	got := Reflect(text)
	assert.Contains(t, longReflections, got)
}

func TestReflectGeneric(t *testing.T) {
	got := Reflect("the train left the station on time")
	assert.Contains(t, genericReflections, got)
}
