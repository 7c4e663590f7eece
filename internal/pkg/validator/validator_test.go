package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "admin@hrms.com"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "123", "0099"}
	invalid := []string{"", "12a", "-1", "1.5"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-07-01", "2000-02-29"}
	invalid := []string{"2024-13-01", "2023-02-29", "01-07-2024", "2024/07/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"08:00:00", "23:59:59", "00:00:00"}
	invalid := []string{"24:00:00", "8:00", "08:60:00", ""}
	for _, s := range valid {
		if _, ok := IsValidTime(s); !ok {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTime(s); ok {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+966 50 123 4567", "0501234567", "555-1234"}
	invalid := []string{"12345", "phone", "+1234567890123456"}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"admin", "hr", "finance"}
	if !IsInSlice("hr", slice) {
		t.Error("IsInSlice(hr) = false, want true")
	}
	if IsInSlice("owner", slice) {
		t.Error("IsInSlice(owner) = true, want false")
	}
}

func TestIsDateRange(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"2024-01-01", "2024-01-05", true},
		{"2024-01-05", "2024-01-05", true},
		{"2024-01-05", "2024-01-01", false},
		{"bad", "2024-01-01", false},
	}
	for _, c := range cases {
		if got := IsDateRange(c.start, c.end); got != c.want {
			t.Errorf("IsDateRange(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	errs.Add("email", "email is required")
	errs.Add("password", "password is required")
	want := "email: email is required; password: password is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("month", "month must be between 1 and 12")
	m := errs.ToMap()
	if m["month"] != "month must be between 1 and 12" {
		t.Errorf("ToMap()[month] = %q", m["month"])
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Error("Err() on empty errors should be nil")
	}
	errs.Add("name", "name is required")
	if errs.Err() == nil {
		t.Error("Err() on non-empty errors should not be nil")
	}
}
