package service

import (
	"context"
	"fmt"
	"log/slog"

	"socialapi/internal/cache"
	"socialapi/internal/event"
	"socialapi/internal/mail"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	"socialapi/internal/storage"
)

// Subscriber registers event handlers. *event.Dispatcher satisfies it.
type Subscriber interface {
	Subscribe(name string, h event.Handler)
}

// Listeners reacts to committed domain events. Each handler runs in its own
// transaction on a dispatcher worker.
type Listeners struct {
	tx          Transactor
	mailer      mail.Mailer
	baseURL     string
	follows     repository.FollowRepository
	friendships repository.FriendshipRepository
	comments    repository.CommentRepository
	posts       repository.PostRepository
	events      MemberEventService
	likes       cache.LikeStore
	store       storage.Storage
	logger      *slog.Logger
}

type ListenerDeps struct {
	Tx          Transactor
	Mailer      mail.Mailer
	BaseURL     string
	Follows     repository.FollowRepository
	Friendships repository.FriendshipRepository
	Comments    repository.CommentRepository
	Posts       repository.PostRepository
	Events      MemberEventService
	Likes       cache.LikeStore
	Store       storage.Storage
	Logger      *slog.Logger
}

func NewListeners(d ListenerDeps) *Listeners {
	return &Listeners{
		tx:          d.Tx,
		mailer:      d.Mailer,
		baseURL:     d.BaseURL,
		follows:     d.Follows,
		friendships: d.Friendships,
		comments:    d.Comments,
		posts:       d.Posts,
		events:      d.Events,
		likes:       d.Likes,
		store:       d.Store,
		logger:      d.Logger.With("component", "listeners"),
	}
}

// Register subscribes every listener on s.
func (l *Listeners) Register(s Subscriber) {
	s.Subscribe(model.EventMemberRegistered, l.SendActivationMail)
	s.Subscribe(model.EventMemberProfileUpdated, l.SyncProfile)
	s.Subscribe(model.EventMemberFollowed, l.NotifyFollow)
	s.Subscribe(model.EventFriendshipRequested, l.NotifyFriendRequest)
	s.Subscribe(model.EventFriendshipAccepted, l.NotifyFriendAccept)
	s.Subscribe(model.EventPostCommented, l.NotifyComment)
	s.Subscribe(model.EventPostDeleted, l.CleanupPost)
}

func (l *Listeners) SendActivationMail(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.MemberRegistered)
	if !ok {
		return unexpected(ev)
	}
	msg, err := mail.RenderActivation(e.Email, mail.ActivationData{
		Nickname: e.Nickname,
		Link:     mail.ActivationLink(l.baseURL, e.ActivationToken),
	})
	if err != nil {
		return err
	}
	if err := l.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send activation mail: %w", err)
	}
	l.logger.Info("activation_mail_sent", "member_id", e.MemberID)
	return nil
}

// SyncProfile rewrites the nickname and profile image cached on follows,
// friendships, comments and posts.
func (l *Listeners) SyncProfile(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.MemberProfileUpdated)
	if !ok {
		return unexpected(ev)
	}
	var follows, friendships, comments, posts int64
	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if follows, err = l.follows.UpdateMemberProfile(ctx, e.MemberID, e.Nickname, e.ProfileImageURL); err != nil {
			return fmt.Errorf("sync follows: %w", err)
		}
		if friendships, err = l.friendships.UpdateMemberProfile(ctx, e.MemberID, e.Nickname, e.ProfileImageURL); err != nil {
			return fmt.Errorf("sync friendships: %w", err)
		}
		if comments, err = l.comments.UpdateWriterProfile(ctx, e.MemberID, e.Nickname, e.ProfileImageURL); err != nil {
			return fmt.Errorf("sync comments: %w", err)
		}
		if posts, err = l.posts.UpdateWriterNickname(ctx, e.MemberID, e.Nickname); err != nil {
			return fmt.Errorf("sync posts: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	l.logger.Info("member_profile_synced",
		"member_id", e.MemberID,
		"follows", follows,
		"friendships", friendships,
		"comments", comments,
		"posts", posts,
	)
	return nil
}

func (l *Listeners) NotifyFollow(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.MemberFollowed)
	if !ok {
		return unexpected(ev)
	}
	return l.notify(ctx, e.FolloweeID, model.MemberEventFollow, e.FollowerID, e.FollowerNickname, e.FollowID)
}

func (l *Listeners) NotifyFriendRequest(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.FriendshipRequested)
	if !ok {
		return unexpected(ev)
	}
	return l.notify(ctx, e.AddresseeID, model.MemberEventFriendRequest, e.RequesterID, e.RequesterNickname, e.FriendshipID)
}

func (l *Listeners) NotifyFriendAccept(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.FriendshipAccepted)
	if !ok {
		return unexpected(ev)
	}
	return l.notify(ctx, e.RequesterID, model.MemberEventFriendAccept, e.AddresseeID, e.AddresseeNickname, e.FriendshipID)
}

// NotifyComment tells the post writer about a comment, unless they wrote it.
func (l *Listeners) NotifyComment(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.PostCommented)
	if !ok {
		return unexpected(ev)
	}
	if e.CommenterID == e.PostWriterID {
		return nil
	}
	return l.notify(ctx, e.PostWriterID, model.MemberEventComment, e.CommenterID, e.CommenterNickname, e.PostID)
}

func (l *Listeners) notify(ctx context.Context, recipientID int64, typ model.MemberEventType, actorID int64, actorNickname string, targetID int64) error {
	return l.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := l.events.Record(ctx, recipientID, typ, actorID, actorNickname, targetID)
		return err
	})
}

// CleanupPost drops the like set and image objects of a deleted post. Both
// steps run even if the first fails.
func (l *Listeners) CleanupPost(ctx context.Context, ev model.Event) error {
	e, ok := ev.(model.PostDeleted)
	if !ok {
		return unexpected(ev)
	}
	likesErr := l.likes.Clear(ctx, e.PostID)
	storeErr := l.store.DeleteMany(ctx, e.StoragePaths)
	if likesErr != nil {
		return fmt.Errorf("clear likes: %w", likesErr)
	}
	if storeErr != nil {
		return fmt.Errorf("delete images: %w", storeErr)
	}
	return nil
}

func unexpected(ev model.Event) error {
	return fmt.Errorf("unexpected event %T for %s", ev, ev.EventName())
}
