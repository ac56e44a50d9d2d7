package model

import (
	"time"

	"socialapi/internal/apperr"
)

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "PENDING"
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
	FriendshipStatusRejected FriendshipStatus = "REJECTED"
)

// Friendship is a symmetric relation created by a request from Requester to
// Addressee.
type Friendship struct {
	ID                       int64            `json:"id"`
	RequesterID              int64            `json:"requester_id"`
	RequesterNickname        string           `json:"requester_nickname"`
	RequesterProfileImageURL string           `json:"requester_profile_image_url"`
	AddresseeID              int64            `json:"addressee_id"`
	AddresseeNickname        string           `json:"addressee_nickname"`
	AddresseeProfileImageURL string           `json:"addressee_profile_image_url"`
	Status                   FriendshipStatus `json:"status"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`

	events
}

func NewFriendship(requester, addressee *Member, now time.Time) (*Friendship, error) {
	if err := requirePositiveID("friendship", "requester id", requester.ID); err != nil {
		return nil, err
	}
	if err := requirePositiveID("friendship", "addressee id", addressee.ID); err != nil {
		return nil, err
	}
	if requester.ID == addressee.ID {
		return nil, apperr.Validation("friendship", "SELF_FRIENDSHIP", "cannot send a friend request to yourself")
	}
	f := &Friendship{CreatedAt: now}
	f.assign(requester, addressee, now)
	return f, nil
}

func (f *Friendship) assign(requester, addressee *Member, now time.Time) {
	f.RequesterID = requester.ID
	f.RequesterNickname = requester.Nickname
	f.RequesterProfileImageURL = requester.ProfileImageURL
	f.AddresseeID = addressee.ID
	f.AddresseeNickname = addressee.Nickname
	f.AddresseeProfileImageURL = addressee.ProfileImageURL
	f.Status = FriendshipStatusPending
	f.UpdatedAt = now
}

// Requested records FriendshipRequested. Call once the friendship has an ID.
func (f *Friendship) Requested() {
	f.record(FriendshipRequested{
		FriendshipID:      f.ID,
		RequesterID:       f.RequesterID,
		RequesterNickname: f.RequesterNickname,
		AddresseeID:       f.AddresseeID,
	})
}

// Reopen turns a rejected friendship back into a pending request, possibly
// from the other side.
func (f *Friendship) Reopen(requester, addressee *Member, now time.Time) error {
	if f.Status != FriendshipStatusRejected {
		return apperr.InvalidState("friendship", "FRIENDSHIP_EXISTS", "a friendship or pending request already exists")
	}
	f.assign(requester, addressee, now)
	f.Requested()
	return nil
}

func (f *Friendship) respond(memberID int64) error {
	if f.AddresseeID != memberID {
		return apperr.Unauthorized("friendship", "NOT_ADDRESSEE", "only the addressee can respond to this request")
	}
	if f.Status != FriendshipStatusPending {
		return apperr.InvalidState("friendship", "NOT_PENDING", "friendship request is not pending")
	}
	return nil
}

func (f *Friendship) Accept(memberID int64, now time.Time) error {
	if err := f.respond(memberID); err != nil {
		return err
	}
	f.Status = FriendshipStatusAccepted
	f.UpdatedAt = now
	f.record(FriendshipAccepted{
		FriendshipID:      f.ID,
		RequesterID:       f.RequesterID,
		AddresseeID:       f.AddresseeID,
		AddresseeNickname: f.AddresseeNickname,
	})
	return nil
}

func (f *Friendship) Reject(memberID int64, now time.Time) error {
	if err := f.respond(memberID); err != nil {
		return err
	}
	f.Status = FriendshipStatusRejected
	f.UpdatedAt = now
	return nil
}

func (f *Friendship) Involves(memberID int64) bool {
	return f.RequesterID == memberID || f.AddresseeID == memberID
}

// Friend is one row of a member's friend list: the other side of an accepted
// friendship.
type Friend struct {
	FriendshipID    int64     `json:"friendship_id"`
	MemberID        int64     `json:"member_id"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
	Since           time.Time `json:"since"`
}

// Counterpart returns the friend seen from memberID.
func (f *Friendship) Counterpart(memberID int64) Friend {
	if f.RequesterID == memberID {
		return Friend{
			FriendshipID:    f.ID,
			MemberID:        f.AddresseeID,
			Nickname:        f.AddresseeNickname,
			ProfileImageURL: f.AddresseeProfileImageURL,
			Since:           f.UpdatedAt,
		}
	}
	return Friend{
		FriendshipID:    f.ID,
		MemberID:        f.RequesterID,
		Nickname:        f.RequesterNickname,
		ProfileImageURL: f.RequesterProfileImageURL,
		Since:           f.UpdatedAt,
	}
}
