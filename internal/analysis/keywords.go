package analysis

import "github.com/Gaurav-yadav-03/moodscape-flow/internal/models"

// Keyword tables are plain data so the scoring code can be tested and
// extended without touching the algorithm.

// moodKeywords maps each mood label to the words that signal it.
var moodKeywords = map[string][]string{
	models.MoodHappy:    {"happy", "joy", "wonderful", "amazing", "great", "fantastic", "love", "blessed", "pleased", "grateful", "perfect"},
	models.MoodExcited:  {"excited", "thrilled", "pumped", "energetic", "eager", "hyped", "adventure", "celebration", "anticipating"},
	models.MoodCalm:     {"calm", "peaceful", "relaxed", "tranquil", "serene", "quiet", "meditat"},
	models.MoodStressed: {"stressed", "anxious", "worried", "overwhelmed", "pressure", "tense", "panic", "deadline"},
	models.MoodSad:      {"sad", "depressed", "down", "upset", "cry", "tears", "lonely", "hurt", "pain", "disappointed"},
	models.MoodNeutral:  {"okay", "fine", "normal", "regular", "usual", "standard"},
}

// moodOrder fixes iteration order so scoring is deterministic.
var moodOrder = []string{
	models.MoodHappy,
	models.MoodExcited,
	models.MoodCalm,
	models.MoodStressed,
	models.MoodSad,
	models.MoodNeutral,
}

// emotionLabels maps classifier emotion labels onto the six mood labels.
// Anything unmapped resolves to neutral.
var emotionLabels = map[string]string{
	"joy":        models.MoodExcited,
	"happiness":  models.MoodHappy,
	"excitement": models.MoodExcited,
	"love":       models.MoodHappy,
	"sadness":    models.MoodSad,
	"fear":       models.MoodStressed,
	"anger":      models.MoodStressed,
	"anxiety":    models.MoodStressed,
	"disgust":    models.MoodSad,
	"surprise":   models.MoodExcited,
	"calm":       models.MoodCalm,
	"neutral":    models.MoodNeutral,
}

// Life-domain themes used by reflection and summary clauses.
const (
	ThemeWork          = "work"
	ThemeRelationships = "relationships"
	ThemeStress        = "stress"
	ThemeJoy           = "joy"
)

var themeKeywords = map[string][]string{
	ThemeWork:          {"work", "job", "meeting", "deadline", "project", "office", "career"},
	ThemeRelationships: {"family", "friend", "relationship", "love", "partner", "social", "connect"},
	ThemeStress:        {"stress", "worried", "anxious", "difficult", "hard", "struggle", "overwhelmed"},
	ThemeJoy:           {"happy", "excited", "amazing", "wonderful", "great", "joy", "grateful"},
}

var themeOrder = []string{ThemeWork, ThemeRelationships, ThemeStress, ThemeJoy}

// sentimentWords flag a sentence as emotionally loaded for summary scoring.
var sentimentWords = []string{
	"happy", "joy", "excited", "amazing", "wonderful", "great", "love", "grateful",
	"sad", "stress", "anxious", "worried", "overwhelmed", "difficult", "hard",
	"lonely", "hurt", "angry", "upset", "tired", "proud", "afraid",
}

// stopwords excluded from keyword extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,

	"i": true, "me": true, "my": true, "myself": true,
	"you": true, "your": true, "yours": true, "yourself": true,
	"he": true, "him": true, "his": true, "himself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"it": true, "its": true, "itself": true,
	"we": true, "us": true, "our": true, "ours": true,
	"they": true, "them": true, "their": true, "theirs": true,
	"this": true, "that": true, "these": true, "those": true,
	"what": true, "which": true, "who": true, "whom": true,

	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true, "done": true,

	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,

	"and": true, "but": true, "or": true, "nor": true, "so": true, "yet": true,
	"if": true, "then": true, "than": true, "because": true, "while": true,
	"of": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"to": true, "from": true, "up": true, "in": true, "out": true,
	"on": true, "off": true, "over": true, "under": true,
	"again": true, "further": true, "once": true, "here": true, "there": true,
	"when": true, "where": true, "why": true, "how": true,
	"all": true, "any": true, "both": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "not": true, "only": true, "own": true, "same": true,
	"too": true, "very": true, "just": true, "also": true, "really": true,
	"today": true, "went": true, "got": true, "get": true, "like": true,
}
