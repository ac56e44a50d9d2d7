package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAs(t *testing.T) {
	base := NotFound("member", "MEMBER_NOT_FOUND", "member not found")
	wrapped := fmt.Errorf("load follower: %w", base)

	got, ok := As(wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)
	assert.True(t, errors.Is(wrapped, base))
	assert.Equal(t, "member: member not found", got.Error())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Validation("post", "INVALID_CONTENT", "content must not be blank"), KindValidation))
	assert.False(t, IsKind(InvalidState("friendship", "NOT_PENDING", "friendship is not pending"), KindValidation))
	assert.False(t, IsKind(nil, KindNotFound))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "unauthenticated", KindUnauthenticated.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
