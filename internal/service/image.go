package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"socialapi/internal/model"
	"socialapi/internal/repository"
	"socialapi/internal/storage"
)

// ImageService defines the use cases for uploaded images.
type ImageService interface {
	// Upload streams the content to object storage, then saves its metadata.
	// The object is removed again when the metadata cannot be saved.
	Upload(ctx context.Context, uploaderID int64, r io.Reader, filename, contentType string, size int64) (*model.Image, error)
	// Get returns the image with a presigned download URL.
	Get(ctx context.Context, id int64) (*model.Image, error)
	// Open streams the stored object.
	Open(ctx context.Context, id int64) (io.ReadCloser, *model.Image, error)
	ListByPost(ctx context.Context, postID int64) ([]model.Image, error)
	// Delete removes the object first, then its row. Uploader only.
	Delete(ctx context.Context, uploaderID, id int64) error
}

type imageService struct {
	store  storage.Storage
	repo   repository.ImageRepository
	expiry time.Duration
	now    func() time.Time
}

func NewImageService(store storage.Storage, repo repository.ImageRepository, presignExpiry time.Duration) ImageService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &imageService{store: store, repo: repo, expiry: presignExpiry, now: utcNow}
}

func (s *imageService) Upload(ctx context.Context, uploaderID int64, r io.Reader, filename, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := model.ValidateImageUpload(uploaderID, contentType, size); err != nil {
		return nil, err
	}

	key := storage.ImageKey(uploaderID, filename, contentType)
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	img := &model.Image{
		UploaderID:  uploaderID,
		StoragePath: objInfo.Key,
		ContentType: contentType,
		Size:        objInfo.Size,
		CreatedAt:   s.now(),
	}
	stored, err := s.repo.Create(ctx, img)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	if err := presign(ctx, s.store, s.expiry, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *imageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrImageNotFound)
	}
	if err := presign(ctx, s.store, s.expiry, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *imageService) Open(ctx context.Context, id int64) (io.ReadCloser, *model.Image, error) {
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, notFound(err, ErrImageNotFound)
	}
	rc, _, err := s.store.Get(ctx, img.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open object: %w", err)
	}
	return rc, img, nil
}

func (s *imageService) ListByPost(ctx context.Context, postID int64) ([]model.Image, error) {
	imgs, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	for i := range imgs {
		if err := presign(ctx, s.store, s.expiry, &imgs[i]); err != nil {
			return nil, err
		}
	}
	return imgs, nil
}

func (s *imageService) Delete(ctx context.Context, uploaderID, id int64) error {
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrImageNotFound)
	}
	if err := img.CheckUploader(uploaderID); err != nil {
		return err
	}
	// Storage first: if it fails the row still points at the object.
	if err := s.store.Delete(ctx, img.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return notFound(s.repo.Delete(ctx, id), ErrImageNotFound)
}

func presign(ctx context.Context, store storage.Storage, expiry time.Duration, img *model.Image) error {
	u, err := store.PresignGet(ctx, img.StoragePath, expiry)
	if err != nil {
		return fmt.Errorf("presign %s: %w", img.StoragePath, err)
	}
	img.URL = u
	return nil
}
