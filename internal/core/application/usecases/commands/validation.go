package commands

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"sitta/internal/pkg/errs"
)

var (
	studentIDPattern = regexp.MustCompile(`^\d{9,}$`)
	phonePattern     = regexp.MustCompile(`^[\d\-+]{10,15}$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var (
	ErrStudentIDFormat = errors.New("student id must be at least 9 digits")
	ErrPhoneFormat     = errors.New("phone must be 10 to 15 digits, '-' or '+'")
	ErrEmailFormat     = errors.New("email is not a valid address")
)

// required trims s and reports ValueIsRequired for param when nothing is left.
func required(param, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	return s, nil
}

func validStudentID(s string) (string, error) {
	s, err := required("studentID", s)
	if err != nil {
		return "", err
	}
	if !studentIDPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("studentID", ErrStudentIDFormat)
	}
	return s, nil
}

func validPhone(s string) (string, error) {
	s, err := required("phone", s)
	if err != nil {
		return "", err
	}
	if !phonePattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("phone", ErrPhoneFormat)
	}
	return s, nil
}

// validEmail accepts a blank value; email is optional.
func validEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s != "" && !emailPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("email", ErrEmailFormat)
	}
	return s, nil
}

func nonNegative(param string, v int) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is negative", v))
	}
	return nil
}
