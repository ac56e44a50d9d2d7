package model

// Event is a domain event recorded by an aggregate and published once the
// transaction that produced it has committed.
type Event interface {
	EventName() string
}

const (
	EventMemberRegistered     = "member.registered"
	EventMemberProfileUpdated = "member.profile_updated"
	EventMemberFollowed       = "member.followed"
	EventFriendshipRequested  = "friendship.requested"
	EventFriendshipAccepted   = "friendship.accepted"
	EventPostCommented        = "post.commented"
	EventPostDeleted          = "post.deleted"
)

type MemberRegistered struct {
	MemberID        int64
	Email           string
	Nickname        string
	ActivationToken string
}

func (MemberRegistered) EventName() string { return EventMemberRegistered }

type MemberProfileUpdated struct {
	MemberID        int64
	Nickname        string
	ProfileImageURL string
}

func (MemberProfileUpdated) EventName() string { return EventMemberProfileUpdated }

type MemberFollowed struct {
	FollowID         int64
	FollowerID       int64
	FollowerNickname string
	FolloweeID       int64
}

func (MemberFollowed) EventName() string { return EventMemberFollowed }

type FriendshipRequested struct {
	FriendshipID      int64
	RequesterID       int64
	RequesterNickname string
	AddresseeID       int64
}

func (FriendshipRequested) EventName() string { return EventFriendshipRequested }

type FriendshipAccepted struct {
	FriendshipID      int64
	RequesterID       int64
	AddresseeID       int64
	AddresseeNickname string
}

func (FriendshipAccepted) EventName() string { return EventFriendshipAccepted }

type PostCommented struct {
	PostID            int64
	PostWriterID      int64
	CommentID         int64
	CommenterID       int64
	CommenterNickname string
}

func (PostCommented) EventName() string { return EventPostCommented }

type PostDeleted struct {
	PostID       int64
	WriterID     int64
	StoragePaths []string
}

func (PostDeleted) EventName() string { return EventPostDeleted }

// events is embedded by aggregates that record domain events.
type events struct {
	pending []Event
}

func (e *events) record(ev Event) {
	e.pending = append(e.pending, ev)
}

// PullEvents drains the recorded events.
func (e *events) PullEvents() []Event {
	out := e.pending
	e.pending = nil
	return out
}
