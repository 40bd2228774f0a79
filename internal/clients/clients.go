// Package clients holds client registration data and the field-format
// checks run at account opening: name, email, CPF and Brazilian phone.
package clients

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidCPF   = errors.New("invalid CPF")
	ErrInvalidPhone = errors.New("invalid phone")
)

var (
	nameRe  = regexp.MustCompile(`^[\p{L}][\p{L} '.-]{1,79}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	cpfRe   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phoneRe = regexp.MustCompile(`^\(\d{2}\) 9?\d{4}-\d{4}$`)
)

// Client is a registered account holder.
type Client struct {
	Name  string
	Email string
	CPF   string
	Phone string
}

// New validates every field and returns the registered client.
func New(name, email, cpf, phone string) (*Client, error) {
	name = strings.TrimSpace(name)
	switch {
	case !ValidName(name):
		return nil, ErrInvalidName
	case !ValidEmail(email):
		return nil, ErrInvalidEmail
	case !ValidCPF(cpf):
		return nil, ErrInvalidCPF
	case !ValidPhone(phone):
		return nil, ErrInvalidPhone
	}
	return &Client{Name: name, Email: email, CPF: cpf, Phone: phone}, nil
}

// ValidName reports whether s is an acceptable person name.
func ValidName(s string) bool { return nameRe.MatchString(s) }

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidCPF reports whether s is a CPF in 000.000.000-00 form.
func ValidCPF(s string) bool { return cpfRe.MatchString(s) }

// ValidPhone reports whether s is a phone in (11) 91234-5678 form.
func ValidPhone(s string) bool { return phoneRe.MatchString(s) }
