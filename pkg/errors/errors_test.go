package errors

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestNewAndWrap(t *testing.T) {
	err := New(ErrCodeInvalidPillar, "stem %s and branch %s differ in polarity", "甲", "丑")
	if got, want := err.Error(), "INVALID_PILLAR: stem 甲 and branch 丑 differ in polarity"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("permission denied")
	wrapped := Wrap(ErrCodeInvalidPath, cause, "open %s", "me.toml")
	if got, want := wrapped.Error(), "INVALID_PATH: open me.toml: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(wrapped) != cause {
		t.Error("Unwrap should return the cause")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("stdlib errors.Is should see the cause")
	}
}

func TestIs(t *testing.T) {
	pillar := New(ErrCodeInvalidPillar, "parse pillar %q", "甲丑")
	chart := Wrap(ErrCodeInvalidChart, pillar, "reference.toml")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"same code", pillar, ErrCodeInvalidPillar, true},
		{"other code", pillar, ErrCodeUnsupported, false},
		{"outer code", chart, ErrCodeInvalidChart, true},
		{"inner code", chart, ErrCodeInvalidPillar, true},
		{"through fmt wrapping", fmt.Errorf("load: %w", chart), ErrCodeInvalidPillar, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeInvalidOptions, "no transit selected"), ErrCodeInvalidOptions},
		{"outermost wins", Wrap(ErrCodeInvalidChart, New(ErrCodeInvalidPillar, "x"), "y"), ErrCodeInvalidChart},
		{"unsupported year", Unsupported("dayun", 1980, 1990, 0), ErrCodeUnsupported},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"single", New(ErrCodeInvalidInput, "either --chart or --pillars is required"),
			[]string{"either --chart or --pillars is required"}},
		{"nested", Wrap(ErrCodeInvalidChart, New(ErrCodeInvalidChart, "unknown keys: colour"), "me.toml"),
			[]string{"me.toml", "unknown keys: colour"}},
		{"plain cause", Wrap(ErrCodeInvalidPath, errors.New("permission denied"), "open me.toml"),
			[]string{"open me.toml", "permission denied"}},
		{"unsupported", Unsupported("dayun", 1980, 1985, 0),
			[]string{"year 1980 not supported", "dayun: year 1980 before 1985"}},
		{"plain", errors.New("plain"), []string{"plain"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Messages(tt.err); !slices.Equal(got, tt.want) {
				t.Errorf("Messages() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := UserMessage(Unsupported("dayun", 1980, 1985, 0)); got != "year 1980 not supported" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestUnsupportedYearError(t *testing.T) {
	tests := []struct {
		err  *UnsupportedYearError
		want string
	}{
		{&UnsupportedYearError{Year: 1980, First: 1990, Transit: "liunian"}, "liunian: year 1980 before 1990"},
		{&UnsupportedYearError{Year: 2000, First: 1990, Last: 1992, Transit: "xiaoyun"}, "xiaoyun: year 2000 outside 1990..1992"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if tt.err.Code() != ErrCodeUnsupported {
			t.Errorf("Code() = %q", tt.err.Code())
		}
	}

	var ye *UnsupportedYearError
	if !errors.As(Unsupported("dayun", 1980, 1990, 0), &ye) || ye.First != 1990 {
		t.Errorf("errors.As found %+v", ye)
	}
}
