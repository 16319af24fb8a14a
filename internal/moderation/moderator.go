package moderation

import (
	"regexp"
	"strings"
)

// Result is the outcome of moderating a single piece of text. IsSafe is
// true only when neither profanity nor PII was detected.
type Result struct {
	IsSafe       bool     `json:"is_safe"`
	HasProfanity bool     `json:"has_profanity"`
	ProfaneWords []string `json:"profane_words"`
	HasPII       bool     `json:"has_pii"`
	PIITypes     []string `json:"pii_types"`
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	ssnPattern   = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	cardPattern  = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)
)

// defaultDenylist is intentionally small; deployments extend it through
// NewModeratorWithWords.
var defaultDenylist = []string{
	"ass", "asshole", "bastard", "bitch", "bollocks", "bullshit",
	"crap", "cunt", "damn", "dick", "douche", "fuck", "fucker",
	"fucking", "goddamn", "jackass", "motherfucker", "piss",
	"prick", "pussy", "shit", "shitty", "slut", "twat", "wanker",
	"whore",
}

// Moderator classifies text as safe or unsafe. It is a pure value with no
// side effects and is safe for concurrent use.
type Moderator struct {
	denylist map[string]struct{}
}

func NewModerator() *Moderator {
	return NewModeratorWithWords(defaultDenylist)
}

func NewModeratorWithWords(words []string) *Moderator {
	denylist := make(map[string]struct{}, len(words))
	for _, w := range words {
		denylist[strings.ToLower(w)] = struct{}{}
	}
	return &Moderator{denylist: denylist}
}

// Check runs both profanity and PII detection over text.
func (m *Moderator) Check(text string) Result {
	hasProfanity, profaneWords := m.CheckProfanity(text)
	hasPII, piiTypes := CheckPII(text)

	return Result{
		IsSafe:       !hasProfanity && !hasPII,
		HasProfanity: hasProfanity,
		ProfaneWords: profaneWords,
		HasPII:       hasPII,
		PIITypes:     piiTypes,
	}
}

// CheckProfanity reports whether text contains denylisted terms and returns
// the offending words as they appeared in the input.
func (m *Moderator) CheckProfanity(text string) (bool, []string) {
	var found []string
	for _, word := range strings.Fields(text) {
		normalized := strings.ToLower(strings.Trim(word, ".,!?;:\"'()[]{}"))
		if _, ok := m.denylist[normalized]; ok {
			found = append(found, word)
		}
	}
	return len(found) > 0, found
}

// CheckPII reports whether text matches any known PII pattern. Detected
// types are a subset of {email, phone, ssn, credit_card}.
func CheckPII(text string) (bool, []string) {
	var types []string
	if emailPattern.MatchString(text) {
		types = append(types, "email")
	}
	if phonePattern.MatchString(text) {
		types = append(types, "phone")
	}
	if ssnPattern.MatchString(text) {
		types = append(types, "ssn")
	}
	if cardPattern.MatchString(text) {
		types = append(types, "credit_card")
	}
	return len(types) > 0, types
}
