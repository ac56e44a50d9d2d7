package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialapi/internal/apperr"
	"socialapi/internal/model"
	repoMocks "socialapi/internal/repository/mocks"
	"socialapi/internal/storage"
	storeMocks "socialapi/internal/storage/mocks"
)

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()
	const expiry = 5 * time.Minute

	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		setupMocks  func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader
		wantErr     error
		wantKind    apperr.Kind
		wantErrMsg  string
	}{
		{
			name:        "happy path",
			filename:    "cat.PNG",
			contentType: "image/png",
			size:        11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "images/7/") && strings.HasSuffix(key, ".png")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "cat.PNG"},
				}).Return(storage.ObjectInfo{
					Key:         "images/7/uuid.png",
					Size:        11,
					ContentType: "image/png",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(img *model.Image) bool {
					return img.UploaderID == 7 && img.StoragePath == "images/7/uuid.png" && img.PostID == nil
				})).Return(&model.Image{ID: 1, UploaderID: 7, StoragePath: "images/7/uuid.png"}, nil)

				mStore.On("PresignGet", ctx, "images/7/uuid.png", expiry).Return("https://cdn/images/7/uuid.png", nil)
				return r
			},
		},
		{
			name:     "nil reader",
			filename: "cat.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:        "not an image",
			filename:    "notes.txt",
			contentType: "text/plain",
			size:        5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				return strings.NewReader("hello")
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:        "storage error",
			filename:    "cat.png",
			contentType: "image/png",
			size:        5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:        "repository error with successful rollback",
			filename:    "cat.png",
			contentType: "image/png",
			size:        5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:        "repository error with failed rollback",
			filename:    "cat.png",
			contentType: "image/png",
			size:        5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockImageRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockImageRepository)
			svc := NewImageService(mStore, mRepo, expiry)

			r := tt.setupMocks(mStore, mRepo)

			img, err := svc.Upload(ctx, 7, r, tt.filename, tt.contentType, tt.size)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != 0:
				assertKind(t, err, tt.wantKind)
			case tt.wantErrMsg != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "https://cdn/images/7/uuid.png", img.URL)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestImageService_Get(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockImageRepository)
	svc := NewImageService(mStore, mRepo, 0)

	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Image{ID: 1, StoragePath: "images/1/a.png"}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
	mStore.On("PresignGet", ctx, "images/1/a.png", 15*time.Minute).Return("https://signed", nil)

	img, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://signed", img.URL)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestImageService_Open(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockImageRepository)
	svc := NewImageService(mStore, mRepo, time.Minute)

	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Image{ID: 1, StoragePath: "images/1/a.png", ContentType: "image/png"}, nil)
	mStore.On("Get", ctx, "images/1/a.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), storage.ObjectInfo{Key: "images/1/a.png"}, nil)

	rc, img, err := svc.Open(ctx, 1)
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", img.ContentType)
}

func TestImageService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("uploader deletes object then row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockImageRepository)
		svc := NewImageService(mStore, mRepo, time.Minute)

		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Image{ID: 1, UploaderID: 7, StoragePath: "images/7/a.png"}, nil)
		mStore.On("Delete", ctx, "images/7/a.png").Return(nil)
		mRepo.On("Delete", ctx, int64(1)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 7, 1))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("other member", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockImageRepository)
		svc := NewImageService(mStore, mRepo, time.Minute)

		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Image{ID: 1, UploaderID: 7}, nil)

		assertKind(t, svc.Delete(ctx, 8, 1), apperr.KindUnauthorized)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("storage failure keeps row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockImageRepository)
		svc := NewImageService(mStore, mRepo, time.Minute)

		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Image{ID: 1, UploaderID: 7, StoragePath: "images/7/a.png"}, nil)
		mStore.On("Delete", ctx, "images/7/a.png").Return(errors.New("s3 down"))

		err := svc.Delete(ctx, 7, 1)
		assert.ErrorContains(t, err, "delete storage: s3 down")
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
