package model

import (
	"time"

	"socialapi/internal/apperr"
)

type Post struct {
	ID             int64     `json:"id"`
	WriterID       int64     `json:"writer_id"`
	WriterNickname string    `json:"writer_nickname"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	events
}

func NewPost(writer *Member, content string, now time.Time) (*Post, error) {
	if err := requirePositiveID("post", "writer id", writer.ID); err != nil {
		return nil, err
	}
	if err := requireText("post", "INVALID_CONTENT", "content", content, PostContentMaxLen); err != nil {
		return nil, err
	}
	return &Post{
		WriterID:       writer.ID,
		WriterNickname: writer.Nickname,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (p *Post) checkWriter(memberID int64) error {
	if p.WriterID != memberID {
		return apperr.Unauthorized("post", "NOT_POST_WRITER", "only the writer can modify this post")
	}
	return nil
}

func (p *Post) Edit(memberID int64, content string, now time.Time) error {
	if err := p.checkWriter(memberID); err != nil {
		return err
	}
	if err := requireText("post", "INVALID_CONTENT", "content", content, PostContentMaxLen); err != nil {
		return err
	}
	p.Content = content
	p.UpdatedAt = now
	return nil
}

// MarkDeleted checks ownership and records PostDeleted with the storage
// paths of attached images.
func (p *Post) MarkDeleted(memberID int64, storagePaths []string) error {
	if err := p.checkWriter(memberID); err != nil {
		return err
	}
	p.record(PostDeleted{PostID: p.ID, WriterID: p.WriterID, StoragePaths: storagePaths})
	return nil
}
