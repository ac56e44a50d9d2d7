package model

import (
	"time"

	"socialapi/internal/apperr"
)

type MemberStatus string

const (
	MemberPending MemberStatus = "PENDING"
	MemberActive  MemberStatus = "ACTIVE"
)

// Member is the account aggregate. Nickname and ProfileImageURL are copied
// into follows, friendships, comments and posts and kept in sync through
// MemberProfileUpdated.
type Member struct {
	ID              int64        `json:"id"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"`
	Nickname        string       `json:"nickname"`
	Introduction    string       `json:"introduction"`
	ProfileImageURL string       `json:"profile_image_url"`
	Status          MemberStatus `json:"status"`
	ActivationToken string       `json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	events
}

// NewMember builds a pending member. The password must already be hashed.
func NewMember(email, passwordHash, nickname, activationToken string, now time.Time) (*Member, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidateNickname(nickname); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, apperr.Validation("member", "INVALID_PASSWORD", "password must not be blank")
	}
	return &Member{
		Email:           email,
		PasswordHash:    passwordHash,
		Nickname:        nickname,
		Status:          MemberPending,
		ActivationToken: activationToken,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Registered records MemberRegistered. Call once the member has an ID.
func (m *Member) Registered() {
	m.record(MemberRegistered{
		MemberID:        m.ID,
		Email:           m.Email,
		Nickname:        m.Nickname,
		ActivationToken: m.ActivationToken,
	})
}

func (m *Member) IsActive() bool { return m.Status == MemberActive }

// Activate moves a pending member to ACTIVE. The token stays on the row so a
// repeated activation resolves to the member and fails on status.
func (m *Member) Activate(now time.Time) error {
	if m.IsActive() {
		return apperr.InvalidState("member", "ALREADY_ACTIVATED", "member is already activated")
	}
	m.Status = MemberActive
	m.UpdatedAt = now
	return nil
}

// ProfileUpdate carries optional profile changes; nil fields are left untouched.
type ProfileUpdate struct {
	Nickname        *string
	Introduction    *string
	ProfileImageURL *string
}

// UpdateProfile applies the update and records MemberProfileUpdated when a
// denormalized field (nickname or profile image) changed.
func (m *Member) UpdateProfile(u ProfileUpdate, now time.Time) error {
	nickname, intro, image := m.Nickname, m.Introduction, m.ProfileImageURL
	if u.Nickname != nil {
		if err := ValidateNickname(*u.Nickname); err != nil {
			return err
		}
		nickname = *u.Nickname
	}
	if u.Introduction != nil {
		if err := validateIntroduction(*u.Introduction); err != nil {
			return err
		}
		intro = *u.Introduction
	}
	if u.ProfileImageURL != nil {
		image = *u.ProfileImageURL
	}

	fanout := nickname != m.Nickname || image != m.ProfileImageURL
	m.Nickname, m.Introduction, m.ProfileImageURL = nickname, intro, image
	m.UpdatedAt = now
	if fanout {
		m.record(MemberProfileUpdated{
			MemberID:        m.ID,
			Nickname:        m.Nickname,
			ProfileImageURL: m.ProfileImageURL,
		})
	}
	return nil
}
