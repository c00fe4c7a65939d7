package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors carries every field problem found in one submission.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

const (
	maxNameLength    = 200
	maxShortField    = 200
	maxMessageLength = 5000
)

var phoneDigits = regexp.MustCompile(`\D`)

func validateName(errs ValidationErrors, field, value string) ValidationErrors {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return append(errs, ValidationError{field, fmt.Sprintf("must not exceed %d characters", maxNameLength)})
	}
	return errs
}

func validateEmail(errs ValidationErrors, field, value string) ValidationErrors {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	if !isValidEmail(value) {
		return append(errs, ValidationError{field, "is invalid"})
	}
	return errs
}

func validateRequiredText(errs ValidationErrors, field, value string, max int) ValidationErrors {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	return validateOptionalText(errs, field, value, max)
}

func validateOptionalText(errs ValidationErrors, field, value string, max int) ValidationErrors {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		return append(errs, ValidationError{field, fmt.Sprintf("must not exceed %d characters", max)})
	}
	return errs
}

func validateOptionalPhone(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return errs
	}
	digits := phoneDigits.ReplaceAllString(value, "")
	if len(digits) < 7 || len(digits) > 15 {
		return append(errs, ValidationError{field, "must be a valid phone number"})
	}
	return errs
}

// isValidEmail accepts a bare RFC 5322 address with a dotted domain.
func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
