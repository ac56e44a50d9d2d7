package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockImageService struct {
	mock.Mock
}

var _ service.ImageService = (*MockImageService)(nil)

func (m *MockImageService) Upload(ctx context.Context, uploaderID int64, r io.Reader, filename, contentType string, size int64) (*model.Image, error) {
	args := m.Called(ctx, uploaderID, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Open(ctx context.Context, id int64) (io.ReadCloser, *model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Image), args.Error(2)
}

func (m *MockImageService) ListByPost(ctx context.Context, postID int64) ([]model.Image, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, uploaderID, id int64) error {
	args := m.Called(ctx, uploaderID, id)
	return args.Error(0)
}
