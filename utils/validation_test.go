package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+5511999990000",
		"5511999990000",
		"+1 (415) 555-0100",
		"11 98888-7777",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{
		"",
		"abc",
		"0123",
		"+",
		"12345678901234567890",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}
