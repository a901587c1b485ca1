package account

import (
	"unicode"
	"unicode/utf8"

	"cardbank/internal/domain"
)

const (
	minLoginLength    = 4
	maxLoginLength    = 20
	minPasswordLength = 6
	maxPasswordLength = 30
	minAge            = 23
	maxAge            = 90
)

// Validation codes reported in domain.ValidationError.
const (
	CodeNameFirstLetter  = "name.first_letter"
	CodeLoginPresent     = "login.present"
	CodeLoginTooLong     = "login.too_long"
	CodeLoginTooShort    = "login.too_short"
	CodePasswordPresent  = "password.present"
	CodePasswordTooLong  = "password.too_long"
	CodePasswordTooShort = "password.too_short"
	CodeAgeRange         = "age.range"
	CodeLoginExists      = "login.exists"
)

// Validate checks the field rules of a new account and returns the code of
// every broken rule, in field order. Rules are independent, so an empty
// login reports both CodeLoginPresent and CodeLoginTooShort.
// Login uniqueness needs the store and is checked by CreateAccount.
func Validate(acc domain.Account) []string {
	var codes []string

	first, _ := utf8.DecodeRuneInString(acc.Name)
	if acc.Name == "" || !unicode.IsUpper(first) {
		codes = append(codes, CodeNameFirstLetter)
	}

	codes = append(codes, lengthCodes(acc.Login, minLoginLength, maxLoginLength,
		CodeLoginPresent, CodeLoginTooLong, CodeLoginTooShort)...)
	codes = append(codes, lengthCodes(acc.Password, minPasswordLength, maxPasswordLength,
		CodePasswordPresent, CodePasswordTooLong, CodePasswordTooShort)...)

	if acc.Age < minAge || acc.Age > maxAge {
		codes = append(codes, CodeAgeRange)
	}
	return codes
}

func lengthCodes(value string, lo, hi int, present, tooLong, tooShort string) []string {
	var codes []string
	n := utf8.RuneCountInString(value)
	if n == 0 {
		codes = append(codes, present)
	}
	if n > hi {
		codes = append(codes, tooLong)
	}
	if n < lo {
		codes = append(codes, tooShort)
	}
	return codes
}
