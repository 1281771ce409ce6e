package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidIFSC     = errors.New("invalid IFSC code")
	ErrInvalidAccount  = errors.New("invalid bank account number")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Indian mobile numbers, with or without the +91 prefix.
	phoneRegex = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)
	ifscRegex  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

// IFSC identifies the bank branch for lender payouts.
type IFSC struct {
	value string
}

func NewIFSC(s string) (IFSC, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !ifscRegex.MatchString(s) {
		return IFSC{}, ErrInvalidIFSC
	}
	return IFSC{value: s}, nil
}

func (i IFSC) Value() string {
	return i.value
}

type AccountNumber struct {
	value string
}

func NewAccountNumber(s string) (AccountNumber, error) {
	s = strings.TrimSpace(s)
	if len(s) < 9 || len(s) > 18 {
		return AccountNumber{}, ErrInvalidAccount
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return AccountNumber{}, ErrInvalidAccount
		}
	}
	return AccountNumber{value: s}, nil
}

func (a AccountNumber) Value() string {
	return a.value
}

// Masked keeps only the last four digits for display.
func (a AccountNumber) Masked() string {
	if len(a.value) <= 4 {
		return a.value
	}
	return strings.Repeat("*", len(a.value)-4) + a.value[len(a.value)-4:]
}
