package domain

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "5551234567"},
		{"555.123.4567", "5551234567"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "empty is allowed", phone: ""},
		{name: "formatted ten digits", phone: "(555) 123-4567"},
		{name: "bare ten digits", phone: "5551234567"},
		{name: "nine digits", phone: "555-123-456", wantErr: true},
		{name: "eleven digits", phone: "1-555-123-4567", wantErr: true},
		{name: "too long", phone: strings.Repeat("5", MaxPhoneLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := map[string]string{}
			CheckPhone(fields, "phone", tt.phone)
			_, got := fields["phone"]
			if got != tt.wantErr {
				t.Errorf("CheckPhone(%q) error recorded = %v, want %v (%v)", tt.phone, got, tt.wantErr, fields)
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "jane@example.com"},
		{name: "missing", email: "", wantErr: true},
		{name: "blank", email: "   ", wantErr: true},
		{name: "no at sign", email: "jane.example.com", wantErr: true},
		{name: "no domain", email: "jane@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := map[string]string{}
			CheckEmail(fields, "email", tt.email)
			_, got := fields["email"]
			if got != tt.wantErr {
				t.Errorf("CheckEmail(%q) error recorded = %v, want %v", tt.email, got, tt.wantErr)
			}
		})
	}
}

func TestRequireText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		maxLen  int
		wantMsg string
	}{
		{name: "present", value: "Jane", maxLen: 10},
		{name: "empty", value: "", maxLen: 10, wantMsg: MsgRequired},
		{name: "whitespace", value: " \t", maxLen: 10, wantMsg: MsgRequired},
		{name: "at limit", value: strings.Repeat("a", 10), maxLen: 10},
		{name: "over limit", value: strings.Repeat("a", 11), maxLen: 10, wantMsg: "must be at most 10 characters"},
		{name: "no limit", value: strings.Repeat("a", 500), maxLen: 0},
		{name: "counts runes", value: strings.Repeat("é", 10), maxLen: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := map[string]string{}
			RequireText(fields, "name", tt.value, tt.maxLen)
			if got := fields["name"]; got != tt.wantMsg {
				t.Errorf("RequireText(%q) = %q, want %q", tt.value, got, tt.wantMsg)
			}
		})
	}
}

func TestCheckRefID(t *testing.T) {
	t.Parallel()

	zero, one := int64(0), int64(1)
	tests := []struct {
		name    string
		id      *int64
		wantErr bool
	}{
		{name: "nil", id: nil},
		{name: "positive", id: &one},
		{name: "zero", id: &zero, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := map[string]string{}
			CheckRefID(fields, "ref", tt.id)
			if _, got := fields["ref"]; got != tt.wantErr {
				t.Errorf("CheckRefID() error recorded = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	if err := Fail(map[string]string{}); err != nil {
		t.Errorf("Fail(empty) = %v, want nil", err)
	}
	requireValidationField(t, Fail(map[string]string{"x": "bad"}), "x")
}

func TestEqualFoldContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		needle    string
		haystacks []string
		want      bool
	}{
		{name: "empty needle", needle: "", haystacks: nil, want: true},
		{name: "case-insensitive", needle: "ELM", haystacks: []string{"12 Elm St"}, want: true},
		{name: "second haystack", needle: "pool", haystacks: []string{"12 Elm St", "Has a Pool"}, want: true},
		{name: "no match", needle: "oak", haystacks: []string{"12 Elm St", ""}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EqualFoldContains(tt.needle, tt.haystacks...); got != tt.want {
				t.Errorf("EqualFoldContains(%q) = %v, want %v", tt.needle, got, tt.want)
			}
		})
	}
}
