package analysis

import (
	"math/rand"
	"strings"
)

const longEntryWords = 150

// Reflection prompts grouped by theme. One phrasing is picked at random so
// repeated journaling does not see the same question every day.
var themeReflections = map[string][]string{
	ThemeWork: {
		"Work seems to be on your mind. What would make tomorrow at work feel lighter?",
		"You wrote a lot about your work life. What part of it gives you energy, and what drains it?",
		"Career thoughts are showing up here. Is there one small boundary that could protect your time this week?",
	},
	ThemeRelationships: {
		"The people in your life appear throughout this entry. Who made you feel most understood recently?",
		"You reflected on your relationships. Is there someone you would like to reach out to this week?",
		"Connection matters to you. What is one way you could show appreciation to someone close?",
	},
	ThemeStress: {
		"It sounds like things have been heavy. What is one thing you can set down, even for an evening?",
		"You named some real pressure here. What has helped you through difficult stretches before?",
		"Stress is present in this entry. What would taking care of yourself look like tonight?",
	},
	ThemeJoy: {
		"There is real joy in this entry. What made that moment possible, and how could you invite more of it?",
		"You captured something bright today. Who would you like to share this feeling with?",
		"This positivity is worth holding onto. What about today would you want to remember a year from now?",
	},
}

var longReflections = []string{
	"You wrote at length today, which often means something needed space. Reading it back, what stands out most?",
	"This was a full entry. If you had to name the single thread running through it, what would it be?",
}

var genericReflections = []string{
	"What emotion is strongest for you right now, and where do you feel it?",
	"If today had a title, what would it be?",
	"What is one thing from today you want to carry into tomorrow?",
}

const emptyReflection = "Take a moment to notice how you are feeling right now. What brought you here today?"

// Reflect generates a supportive reflection prompt for the entry. Themed
// entries get a theme-specific question, unusually long entries get a
// depth question, and everything else gets a generic prompt.
func Reflect(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return emptyReflection
	}
	if theme := DetectTheme(trimmed); theme != "" {
		return pick(themeReflections[theme])
	}
	if len(strings.Fields(trimmed)) > longEntryWords {
		return pick(longReflections)
	}
	return pick(genericReflections)
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}
