package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"socialapi/internal/apperr"
)

const (
	NicknameMinLen     = 2
	NicknameMaxLen     = 20
	IntroductionMaxLen = 200
	PasswordMinLen     = 8
	PasswordMaxLen     = 64
	PostContentMaxLen  = 2000
	CommentMaxLen      = 500
	CollectionNameMax  = 50
	ImageMaxSize       = 10 << 20
)

func requirePositiveID(domain, field string, id int64) error {
	if id <= 0 {
		return apperr.Validation(domain, "INVALID_ID", field+" must be positive")
	}
	return nil
}

func requireText(domain, code, field, v string, max int) error {
	if strings.TrimSpace(v) == "" {
		return apperr.Validation(domain, code, field+" must not be blank")
	}
	if utf8.RuneCountInString(v) > max {
		return apperr.Validation(domain, code, field+" is too long")
	}
	return nil
}

// ValidateEmail checks the address syntax.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperr.Validation("member", "INVALID_EMAIL", "email format is invalid")
	}
	return nil
}

// ValidateNickname checks a member nickname.
func ValidateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return apperr.Validation("member", "INVALID_NICKNAME", "nickname must not be blank")
	}
	n := utf8.RuneCountInString(nickname)
	if n < NicknameMinLen || n > NicknameMaxLen {
		return apperr.Validation("member", "INVALID_NICKNAME", "nickname must be between 2 and 20 characters")
	}
	return nil
}

// ValidatePassword checks a plain password before it is hashed.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen || len(password) > PasswordMaxLen {
		return apperr.Validation("member", "INVALID_PASSWORD", "password must be between 8 and 64 characters")
	}
	return nil
}

func validateIntroduction(intro string) error {
	if utf8.RuneCountInString(intro) > IntroductionMaxLen {
		return apperr.Validation("member", "INVALID_INTRODUCTION", "introduction must be at most 200 characters")
	}
	return nil
}
