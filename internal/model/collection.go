package model

import (
	"time"

	"socialapi/internal/apperr"
)

// PostCollection is a named, member-owned list of saved posts.
type PostCollection struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPostCollection(memberID int64, name string, now time.Time) (*PostCollection, error) {
	if err := requirePositiveID("collection", "member id", memberID); err != nil {
		return nil, err
	}
	if err := requireText("collection", "INVALID_NAME", "collection name", name, CollectionNameMax); err != nil {
		return nil, err
	}
	return &PostCollection{MemberID: memberID, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (c *PostCollection) CheckOwner(memberID int64) error {
	if c.MemberID != memberID {
		return apperr.Unauthorized("collection", "NOT_COLLECTION_OWNER", "only the owner can access this collection")
	}
	return nil
}

func (c *PostCollection) Rename(memberID int64, name string, now time.Time) error {
	if err := c.CheckOwner(memberID); err != nil {
		return err
	}
	if err := requireText("collection", "INVALID_NAME", "collection name", name, CollectionNameMax); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = now
	return nil
}
