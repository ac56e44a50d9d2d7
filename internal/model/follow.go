package model

import (
	"time"

	"socialapi/internal/apperr"
)

// Follow is a one-directional relation; both sides' display fields are cached.
type Follow struct {
	ID                      int64     `json:"id"`
	FollowerID              int64     `json:"follower_id"`
	FollowerNickname        string    `json:"follower_nickname"`
	FollowerProfileImageURL string    `json:"follower_profile_image_url"`
	FolloweeID              int64     `json:"followee_id"`
	FolloweeNickname        string    `json:"followee_nickname"`
	FolloweeProfileImageURL string    `json:"followee_profile_image_url"`
	CreatedAt               time.Time `json:"created_at"`

	events
}

func NewFollow(follower, followee *Member, now time.Time) (*Follow, error) {
	if err := requirePositiveID("follow", "follower id", follower.ID); err != nil {
		return nil, err
	}
	if err := requirePositiveID("follow", "followee id", followee.ID); err != nil {
		return nil, err
	}
	if follower.ID == followee.ID {
		return nil, apperr.Validation("follow", "SELF_FOLLOW", "cannot follow yourself")
	}
	return &Follow{
		FollowerID:              follower.ID,
		FollowerNickname:        follower.Nickname,
		FollowerProfileImageURL: follower.ProfileImageURL,
		FolloweeID:              followee.ID,
		FolloweeNickname:        followee.Nickname,
		FolloweeProfileImageURL: followee.ProfileImageURL,
		CreatedAt:               now,
	}, nil
}

// Followed records MemberFollowed. Call once the follow has an ID.
func (f *Follow) Followed() {
	f.record(MemberFollowed{
		FollowID:         f.ID,
		FollowerID:       f.FollowerID,
		FollowerNickname: f.FollowerNickname,
		FolloweeID:       f.FolloweeID,
	})
}

// FollowCounts is the follower/following tally of a member.
type FollowCounts struct {
	Followers  int `json:"followers"`
	Followings int `json:"followings"`
}
