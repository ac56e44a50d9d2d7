package model

import (
	"time"

	"socialapi/internal/apperr"
)

type Comment struct {
	ID                    int64     `json:"id"`
	PostID                int64     `json:"post_id"`
	WriterID              int64     `json:"writer_id"`
	WriterNickname        string    `json:"writer_nickname"`
	WriterProfileImageURL string    `json:"writer_profile_image_url"`
	Content               string    `json:"content"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	events
}

func NewComment(post *Post, writer *Member, content string, now time.Time) (*Comment, error) {
	if err := requirePositiveID("comment", "post id", post.ID); err != nil {
		return nil, err
	}
	if err := requirePositiveID("comment", "writer id", writer.ID); err != nil {
		return nil, err
	}
	if err := requireText("comment", "INVALID_CONTENT", "content", content, CommentMaxLen); err != nil {
		return nil, err
	}
	return &Comment{
		PostID:                post.ID,
		WriterID:              writer.ID,
		WriterNickname:        writer.Nickname,
		WriterProfileImageURL: writer.ProfileImageURL,
		Content:               content,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}

// Posted records PostCommented. Call once the comment has an ID.
func (c *Comment) Posted(postWriterID int64) {
	c.record(PostCommented{
		PostID:            c.PostID,
		PostWriterID:      postWriterID,
		CommentID:         c.ID,
		CommenterID:       c.WriterID,
		CommenterNickname: c.WriterNickname,
	})
}

func (c *Comment) CheckWriter(memberID int64) error {
	if c.WriterID != memberID {
		return apperr.Unauthorized("comment", "NOT_COMMENT_WRITER", "only the writer can modify this comment")
	}
	return nil
}

func (c *Comment) Edit(memberID int64, content string, now time.Time) error {
	if err := c.CheckWriter(memberID); err != nil {
		return err
	}
	if err := requireText("comment", "INVALID_CONTENT", "content", content, CommentMaxLen); err != nil {
		return err
	}
	c.Content = content
	c.UpdatedAt = now
	return nil
}
