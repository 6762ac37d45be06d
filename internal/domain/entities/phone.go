package entities

import (
	"errors"
	"regexp"
)

var ErrInvalidPhoneNumber = errors.New("invalid phone number format")

var kenyanMobile = regexp.MustCompile(`^(?:254|0)?([17])([0-9]{8})$`)

// NormalizePhoneNumber canonicalizes a payer phone number into
// international format (2547XXXXXXXX / 2541XXXXXXXX). It strips all
// non-digits first, so local ("07..."), bare national and
// already-international forms (with or without "+") are all accepted.
func NormalizePhoneNumber(phone string) (string, error) {
	digits := numbersOnly(phone)
	m := kenyanMobile.FindStringSubmatch(digits)
	if m == nil {
		return "", ErrInvalidPhoneNumber
	}
	return "254" + m[1] + m[2], nil
}
