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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-15", "2024-02-29", "2025-12-31"}
	invalid := []string{"2025-13-01", "2025-02-30", "15-01-2025", "2025/01/15", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:75", "0930", "", "09:30:00"}
	for _, tod := range valid {
		if _, ok := IsValidTimeOfDay(tod); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", tod)
		}
	}
	for _, tod := range invalid {
		if _, ok := IsValidTimeOfDay(tod); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", tod)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || !IsValidLatitude(0) {
		t.Error("boundary latitudes should be valid")
	}
	if IsValidLatitude(90.0001) || IsValidLatitude(-90.0001) {
		t.Error("out-of-range latitudes should be invalid")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("boundary longitudes should be valid")
	}
	if IsValidLongitude(180.0001) || IsValidLongitude(-180.0001) {
		t.Error("out-of-range longitudes should be invalid")
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"pending", "approved", "rejected", "cancelled"}
	if !IsInSlice("approved", statuses) {
		t.Error("IsInSlice should find approved")
	}
	if IsInSlice("Approved", statuses) {
		t.Error("IsInSlice is case sensitive")
	}
	if IsInSlice("", statuses) {
		t.Error("IsInSlice should not find empty string")
	}
}
