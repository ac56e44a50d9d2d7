package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"socialapi/internal/auth"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	"socialapi/internal/storage"
)

// LoginResult is the access token plus the logged-in member.
type LoginResult struct {
	auth.AccessToken
	Member *model.Member `json:"member"`
}

// MemberService defines account use cases.
type MemberService interface {
	// Register creates a PENDING member and emits MemberRegistered.
	Register(ctx context.Context, email, password, nickname string) (*model.Member, error)
	// Activate resolves an activation token to its member and activates it.
	Activate(ctx context.Context, token string) (*model.Member, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Get(ctx context.Context, id int64) (*model.Member, error)
	// UpdateProfile emits MemberProfileUpdated when nickname or image changed.
	UpdateProfile(ctx context.Context, id int64, u model.ProfileUpdate) (*model.Member, error)
	// Withdraw deletes the member. Owned rows go with it through foreign key
	// cascades; uploaded image objects are removed after the commit.
	Withdraw(ctx context.Context, id int64) error
}

type memberService struct {
	tx      Transactor
	pub     EventPublisher
	members repository.MemberRepository
	images  repository.ImageRepository
	store   storage.Storage
	hasher  auth.PasswordHasher
	tokens  auth.TokenIssuer
	logger  *slog.Logger
	now     func() time.Time
}

func NewMemberService(
	tx Transactor,
	pub EventPublisher,
	members repository.MemberRepository,
	images repository.ImageRepository,
	store storage.Storage,
	hasher auth.PasswordHasher,
	tokens auth.TokenIssuer,
	logger *slog.Logger,
) MemberService {
	return &memberService{
		tx:      tx,
		pub:     pub,
		members: members,
		images:  images,
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger.With("component", "member_service"),
		now:     utcNow,
	}
}

func (s *memberService) Register(ctx context.Context, email, password, nickname string) (*model.Member, error) {
	if err := model.ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	m, err := model.NewMember(email, hash, nickname, uuid.NewString(), s.now())
	if err != nil {
		return nil, err
	}

	var created *model.Member
	err = inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		taken, err := s.members.ExistsByEmail(ctx, m.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
		taken, err = s.members.ExistsByNickname(ctx, m.Nickname, 0)
		if err != nil {
			return fmt.Errorf("check nickname: %w", err)
		}
		if taken {
			return ErrNicknameTaken
		}

		created, err = s.members.Create(ctx, m)
		if err != nil {
			if conflict := memberConflict(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("create member: %w", err)
		}
		created.Registered()
		collect(created.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("member_registered", "member_id", created.ID)
	return created, nil
}

func (s *memberService) Activate(ctx context.Context, token string) (*model.Member, error) {
	if token == "" {
		return nil, ErrActivationTokenBlank
	}
	var m *model.Member
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.members.FindByActivationToken(ctx, token)
		if err != nil {
			return notFound(err, ErrActivationNotFound)
		}
		if err := m.Activate(s.now()); err != nil {
			return err
		}
		return s.members.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	m, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, ErrInvalidCredentials)
	}
	if err := s.hasher.Compare(m.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !m.IsActive() {
		return nil, ErrMemberNotActivated
	}

	tok, err := s.tokens.Issue(m.ID, m.Nickname)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: tok, Member: m}, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*model.Member, error) {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrMemberNotFound)
	}
	return m, nil
}

func (s *memberService) UpdateProfile(ctx context.Context, id int64, u model.ProfileUpdate) (*model.Member, error) {
	var m *model.Member
	err := inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		var err error
		m, err = s.members.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		if u.Nickname != nil && *u.Nickname != m.Nickname {
			taken, err := s.members.ExistsByNickname(ctx, *u.Nickname, id)
			if err != nil {
				return fmt.Errorf("check nickname: %w", err)
			}
			if taken {
				return ErrNicknameTaken
			}
		}
		if err := m.UpdateProfile(u, s.now()); err != nil {
			return err
		}
		if err := s.members.Update(ctx, m); err != nil {
			if conflict := memberConflict(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("update member: %w", err)
		}
		collect(m.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) Withdraw(ctx context.Context, id int64) error {
	var paths []string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		imgs, err := s.images.ListByUploader(ctx, id)
		if err != nil {
			return fmt.Errorf("list images: %w", err)
		}
		for _, img := range imgs {
			paths = append(paths, img.StoragePath)
		}
		if err := s.members.Delete(ctx, id); err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The rows are gone; a failed object delete only leaves orphans behind.
	if err := s.store.DeleteMany(ctx, paths); err != nil {
		s.logger.Error("member_images_cleanup_failed", "member_id", id, "error", err)
	}
	s.logger.Info("member_withdrawn", "member_id", id, "images", len(paths))
	return nil
}

// memberConflict maps a unique-key collision that slipped past the existence
// checks to the matching sentinel, or nil for any other error.
func memberConflict(err error) error {
	field, _ := repository.DuplicateField(err)
	switch field {
	case "email":
		return ErrEmailTaken
	case "nickname":
		return ErrNicknameTaken
	}
	return nil
}
