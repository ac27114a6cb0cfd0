package sms

import (
	"fmt"
	"strings"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// NormalizePhone converts a stored Tanzanian phone number to E.164.
//
// Accepted input forms, after stripping spaces and dashes:
//
//	0754123456     -> +255754123456
//	255754123456   -> +255754123456
//	+255754123456  -> +255754123456
//
// Anything else is rejected; the worker logs and skips rather than handing
// a malformed number to the gateway.
func NormalizePhone(raw string) (string, error) {
	phone := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(phone, "+255"):
		if !allDigits(phone[1:]) || len(phone) != 13 {
			return "", invalidPhone(raw)
		}
		return phone, nil
	case strings.HasPrefix(phone, "255"):
		if !allDigits(phone) || len(phone) != 12 {
			return "", invalidPhone(raw)
		}
		return "+" + phone, nil
	case strings.HasPrefix(phone, "0"):
		if !allDigits(phone) || len(phone) != 10 {
			return "", invalidPhone(raw)
		}
		return "+255" + phone[1:], nil
	default:
		return "", invalidPhone(raw)
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func invalidPhone(raw string) error {
	return errs.NewValueIsInvalidErrorWithCause("phone number",
		fmt.Errorf("%q is not a recognized Tanzanian phone number", raw))
}
