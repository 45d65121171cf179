package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RequireText records a field error when value is blank or longer than
// maxLen runes. A maxLen of 0 disables the length check.
func RequireText(fields map[string]string, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		fields[field] = MsgRequired
		return
	}
	CheckLength(fields, field, value, maxLen)
}

// CheckLength records a field error when value is longer than maxLen runes.
func CheckLength(fields map[string]string, field, value string, maxLen int) {
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		fields[field] = fmt.Sprintf("must be at most %d characters", maxLen)
	}
}

// CheckEmail records a field error when email is missing or malformed.
func CheckEmail(fields map[string]string, field, email string) {
	if strings.TrimSpace(email) == "" {
		fields[field] = MsgRequired
		return
	}
	if err := validate.Var(email, "email"); err != nil {
		fields[field] = "must be a valid email address"
	}
}

// NormalizePhone strips every non-digit character from phone.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// CheckPhone records a field error when a non-empty phone does not
// normalize to exactly PhoneDigits digits.
func CheckPhone(fields map[string]string, field, phone string) {
	if strings.TrimSpace(phone) == "" {
		return
	}
	if len(phone) > MaxPhoneLength {
		fields[field] = fmt.Sprintf("must be at most %d characters", MaxPhoneLength)
		return
	}
	if n := len(NormalizePhone(phone)); n != PhoneDigits {
		fields[field] = fmt.Sprintf("must contain exactly %d digits, got %d", PhoneDigits, n)
	}
}

// CheckRefID records a field error when an optional reference ID is set but
// not positive.
func CheckRefID(fields map[string]string, field string, id *int64) {
	if id != nil && *id <= 0 {
		fields[field] = fmt.Sprintf("must be positive, got %d", *id)
	}
}

// CheckChoice records a field error when an enumerated value is not valid.
func CheckChoice[E Enum](fields map[string]string, field string, v E) {
	if !v.IsValid() {
		fields[field] = fmt.Sprintf("invalid: %q", string(v))
	}
}

// Fail converts collected field errors into a *ValidationError, or nil.
func Fail(fields map[string]string) error {
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// EqualFoldContains reports whether needle is a case-insensitive substring of
// any haystack. An empty needle matches everything.
func EqualFoldContains(needle string, haystacks ...string) bool {
	if needle == "" {
		return true
	}
	n := strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), n) {
			return true
		}
	}
	return false
}

// RefOrNil returns a pointer to id, or nil when id is 0.
func RefOrNil(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
