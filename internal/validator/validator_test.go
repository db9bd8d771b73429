package validator

import "testing"

func TestIsLKPhone(t *testing.T) {
	v := New()

	tests := []struct {
		phone string
		valid bool
	}{
		{"+94771234567", true},
		{"0771234567", true},
		{"0112345678", true},
		{"12345", false},
		{"+9477123456", false},
		{"077123456", false},
		{"07712345678", false},
		{"+94 771234567", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := v.IsLKPhone(tt.phone); got != tt.valid {
			t.Errorf("IsLKPhone(%q) = %v, want %v", tt.phone, got, tt.valid)
		}
	}
}

func TestIsEmail(t *testing.T) {
	v := New()

	tests := []struct {
		email string
		valid bool
	}{
		{"kasun@example.com", true},
		{"a@b.lk", true},
		{"not-an-email", false},
		{"@missing-local.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := v.IsEmail(tt.email); got != tt.valid {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}

func TestStructValidation(t *testing.T) {
	v := New()

	badPhone := "12345"
	req := UpdateLearnerProfileRequest{PhoneNumber: &badPhone}
	errs := v.Struct(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errs))
	}
	if errs[0].Field != "PhoneNumber" || errs[0].Rule != "lk_phone" {
		t.Errorf("unexpected error: %+v", errs[0])
	}

	negative := -1
	progress := UpdateLearnerProgressRequest{CompletedCourses: &negative}
	if errs := v.Struct(progress); len(errs) == 0 {
		t.Error("expected validation error for negative completed_courses")
	}

	goodPhone := "0771234567"
	ok := UpdateLearnerProfileRequest{PhoneNumber: &goodPhone}
	if errs := v.Struct(ok); len(errs) != 0 {
		t.Errorf("expected no errors, got %+v", errs)
	}
}
