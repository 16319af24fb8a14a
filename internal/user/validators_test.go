package user

import "testing"

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "quiz_taker-01", false},
		{"Empty", "", true},
		{"TooShort", "ab", true},
		{"IllegalCharacters", "user name!", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tc.username, err, tc.wantErr)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "s3curepass", false},
		{"TooShort", "a1b2", true},
		{"NoDigit", "passwordonly", true},
		{"NoLetter", "1234567890", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := RegisterDTO{
		Username: "student1",
		Email:    "student1@example.com",
		Password: "s3curepass",
		FullName: "Student One",
	}

	if err := ValidateRegistration(valid); err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}

	missingName := valid
	missingName.FullName = ""
	if err := ValidateRegistration(missingName); err == nil {
		t.Error("expected error for missing full_name")
	}

	badEmail := valid
	badEmail.Email = "not-an-email"
	if err := ValidateRegistration(badEmail); err == nil {
		t.Error("expected error for malformed email")
	}
}
