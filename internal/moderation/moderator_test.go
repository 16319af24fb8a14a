package moderation

import (
	"testing"
)

func TestCheckProfanity(t *testing.T) {
	m := NewModerator()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"CleanText", "What is the capital of France?", false},
		{"Profane", "this is fucking terrible", true},
		{"ProfaneWithPunctuation", "what the hell, damn!", true},
		{"CaseInsensitive", "SHIT happens", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, words := m.CheckProfanity(tc.text)
			if got != tc.want {
				t.Errorf("CheckProfanity(%q) = %v, want %v", tc.text, got, tc.want)
			}
			if got && len(words) == 0 {
				t.Error("expected offending words to be reported")
			}
		})
	}
}

func TestCheckPII(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantTypes []string
	}{
		{"Email", "Contact me at a@b.com", []string{"email"}},
		{"Phone", "call 555-123-4567 today", []string{"phone"}},
		{"SSN", "my ssn is 123-45-6789", []string{"ssn"}},
		{"CreditCard", "card 4111 1111 1111 1111", []string{"credit_card"}},
		{"Clean", "Which planet is closest to the sun?", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, types := CheckPII(tc.text)
			if got != (len(tc.wantTypes) > 0) {
				t.Fatalf("CheckPII(%q) = %v, want %v", tc.text, got, len(tc.wantTypes) > 0)
			}
			for _, want := range tc.wantTypes {
				if !contains(types, want) {
					t.Errorf("pii types %v missing %q", types, want)
				}
			}
		})
	}
}

func TestCheckIsSafe(t *testing.T) {
	m := NewModerator()

	safe := m.Check("Which data structure uses FIFO ordering?")
	if !safe.IsSafe || safe.HasProfanity || safe.HasPII {
		t.Errorf("expected safe result, got %+v", safe)
	}

	unsafe := m.Check("Contact me at a@b.com")
	if unsafe.IsSafe {
		t.Error("expected text with email to be unsafe")
	}
	if !unsafe.HasPII || !contains(unsafe.PIITypes, "email") {
		t.Errorf("expected email pii, got %+v", unsafe)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
