// Package id implements the account number scheme: a zero-padded sequence
// plus a mod-11 check digit, formatted like "00042-6".
package id

import (
	"fmt"
	"strconv"
	"strings"
)

const seqDigits = 5

// FormatAccountNumber returns the display form of an account number.
func FormatAccountNumber(seq int) string {
	return fmt.Sprintf("%0*d-%d", seqDigits, seq, CheckDigit(seq))
}

// CheckDigit computes the mod-11 verifier for a sequence number: each digit
// of the zero-padded sequence is weighted 2..6 from the right, the weighted
// sum is taken mod 11, and verifiers of 10 or 11 collapse to 0.
func CheckDigit(seq int) int {
	sum := 0
	for i, weight := 0, 2; i < seqDigits; i, weight = i+1, weight+1 {
		sum += (seq % 10) * weight
		seq /= 10
	}
	d := 11 - sum%11
	if d >= 10 {
		d = 0
	}
	return d
}

// ParseAccountNumber parses "00042-6" into its sequence, validating the
// check digit.
func ParseAccountNumber(s string) (int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid account number format: %q", s)
	}

	seq, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in account number %q: %w", s, err)
	}

	digit, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid check digit in account number %q: %w", s, err)
	}

	if digit != CheckDigit(seq) {
		return 0, fmt.Errorf("check digit mismatch in account number %q", s)
	}
	return seq, nil
}
