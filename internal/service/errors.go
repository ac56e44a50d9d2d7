package service

import "socialapi/internal/apperr"

var (
	ErrMemberNotFound       = apperr.NotFound("member", "MEMBER_NOT_FOUND", "member not found")
	ErrEmailTaken           = apperr.InvalidState("member", "EMAIL_TAKEN", "email is already registered")
	ErrNicknameTaken        = apperr.InvalidState("member", "NICKNAME_TAKEN", "nickname is already taken")
	ErrInvalidCredentials   = apperr.Unauthenticated("member", "INVALID_CREDENTIALS", "invalid email or password")
	ErrMemberNotActivated   = apperr.InvalidState("member", "MEMBER_NOT_ACTIVATED", "member has not been activated")
	ErrActivationNotFound   = apperr.NotFound("member", "ACTIVATION_TOKEN_NOT_FOUND", "activation token is invalid")
	ErrActivationTokenBlank = apperr.Validation("member", "INVALID_ACTIVATION_TOKEN", "activation token is required")

	ErrPostNotFound    = apperr.NotFound("post", "POST_NOT_FOUND", "post not found")
	ErrCommentNotFound = apperr.NotFound("comment", "COMMENT_NOT_FOUND", "comment not found")

	ErrAlreadyFollowing = apperr.InvalidState("follow", "ALREADY_FOLLOWING", "already following this member")
	ErrNotFollowing     = apperr.NotFound("follow", "NOT_FOLLOWING", "not following this member")

	ErrFriendshipNotFound = apperr.NotFound("friendship", "FRIENDSHIP_NOT_FOUND", "friendship not found")
	ErrNotFriendshipParty = apperr.Unauthorized("friendship", "NOT_FRIENDSHIP_PARTY", "only a party of the friendship can do this")
	ErrFriendshipExists   = apperr.InvalidState("friendship", "FRIENDSHIP_EXISTS", "a friendship or pending request already exists")

	ErrCollectionNotFound  = apperr.NotFound("collection", "COLLECTION_NOT_FOUND", "collection not found")
	ErrPostNotInCollection = apperr.NotFound("collection", "POST_NOT_IN_COLLECTION", "post is not in this collection")

	ErrImageNotFound        = apperr.NotFound("image", "IMAGE_NOT_FOUND", "image not found")
	ErrImageNotOwned        = apperr.Unauthorized("image", "IMAGE_NOT_OWNED", "images must be uploaded by the post writer")
	ErrImageAlreadyAttached = apperr.InvalidState("image", "IMAGE_ALREADY_ATTACHED", "image is already attached to a post")
	ErrReaderNil            = apperr.Validation("image", "EMPTY_UPLOAD", "upload body is missing")

	ErrEventNotFound = apperr.NotFound("event", "EVENT_NOT_FOUND", "event not found")
)
