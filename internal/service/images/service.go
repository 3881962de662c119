package images

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/infra/blobstore"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	imageRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/image"
	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

// Service manages accommodation galleries: rows in PostgreSQL, bytes in the blob store
type Service struct {
	imageRepo         ImageRepository
	accommodationRepo AccommodationRepository
	blobs             BlobStore
	cache             ImageCache
	txManager         TransactionManager
	maxUploadBytes    int64
	timeProvider      TimeProvider
	logger            Logger
}

func NewService(
	imageRepo ImageRepository,
	accommodationRepo AccommodationRepository,
	blobs BlobStore,
	txManager TransactionManager,
	maxUploadBytes int64,
	logger Logger,
) *Service {
	return &Service{
		imageRepo:         imageRepo,
		accommodationRepo: accommodationRepo,
		blobs:             blobs,
		txManager:         txManager,
		maxUploadBytes:    maxUploadBytes,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// WithCache puts a read-through cache in front of Open
func (s *Service) WithCache(cache ImageCache) *Service {
	s.cache = cache
	return s
}

// List returns images ordered by display order, optionally for one accommodation
func (s *Service) List(ctx context.Context, accommodationID *int64) (*models.ImageListResponse, error) {
	list, err := s.imageRepo.List(ctx, accommodationID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ImageListResponse{Images: make([]models.ImageResponse, 0, len(list))}
	for _, img := range list {
		resp.Images = append(resp.Images, *models.FromDomainImage(img))
	}
	return resp, nil
}

// Upload stores the bytes, then the row. The first image of an accommodation becomes primary.
func (s *Service) Upload(ctx context.Context, req *models.UploadImageRequest) (*models.ImageResponse, error) {
	if req.AccommodationID <= 0 {
		return nil, fmt.Errorf("%w: accommodation_id is required", ErrInvalidInput)
	}
	if len(req.Body) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if s.maxUploadBytes > 0 && int64(len(req.Body)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxUploadBytes)
	}

	key, err := blobstore.NewImageKey(req.AccommodationID, req.ContentType, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Upload: rejected content type %q", req.ContentType)
		return nil, ErrUnsupportedType
	}

	if _, err := s.accommodationRepo.GetByID(ctx, req.AccommodationID); err != nil {
		if errors.Is(err, accommodationRepo.ErrAccommodationNotFound) {
			return nil, ErrAccommodationNotFound
		}
		s.logger.Error("Upload: failed to load accommodation id=%d: %v", req.AccommodationID, err)
		return nil, fmt.Errorf("%w: Upload - accommodation: %v", ErrInternal, err)
	}

	if err := s.blobs.Put(ctx, key, req.ContentType, req.Body); err != nil {
		s.logger.Error("Upload: blob put %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: Upload - blob put: %v", ErrInternal, err)
	}

	var created *domain.AccommodationImage
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		next, count, err := s.imageRepo.NextDisplayOrder(txCtx, req.AccommodationID)
		if err != nil {
			return err
		}

		created, err = s.imageRepo.Create(txCtx, &domain.AccommodationImage{
			AccommodationID: req.AccommodationID,
			BlobKey:         key,
			URL:             blobstore.PublicURL(key),
			DisplayOrder:    next,
			Caption:         req.Caption,
			IsPrimary:       count == 0,
		})
		return err
	})
	if err != nil {
		s.logger.Error("Upload: failed to store image row for %s: %v", key, err)
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Upload: orphan blob %s left behind: %v", key, delErr)
		}
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: image id=%d stored as %s (%d bytes)", created.ID, key, len(req.Body))
	return models.FromDomainImage(created), nil
}

// Update changes order, caption or the primary flag of one image.
// Setting primary unsets every other image of the accommodation in the same transaction.
func (s *Service) Update(ctx context.Context, req *models.UpdateImageRequest) (*models.ImageResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	patch := domain.ImagePatch{DisplayOrder: req.DisplayOrder, Caption: req.Caption, IsPrimary: req.IsPrimary}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.DisplayOrder != nil && *patch.DisplayOrder < 0 {
		return nil, fmt.Errorf("%w: display_order must not be negative", ErrInvalidInput)
	}

	var updated *domain.AccommodationImage
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		img, err := s.imageRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := s.imageRepo.UpdateMetadata(txCtx, img.ID, patch.DisplayOrder, patch.Caption); err != nil {
			return err
		}

		if patch.IsPrimary != nil {
			if err := s.imageRepo.ClearPrimary(txCtx, img.AccommodationID); err != nil {
				return err
			}
			if *patch.IsPrimary {
				if err := s.imageRepo.MarkPrimary(txCtx, img.ID); err != nil {
					return err
				}
			}
		}

		updated, err = s.imageRepo.GetByID(txCtx, img.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, imageRepo.ErrImageNotFound) {
			return nil, ErrImageNotFound
		}
		s.logger.Error("Update: image id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: image id=%d updated", req.ID)
	return models.FromDomainImage(updated), nil
}

// Reorder sets display_order to the position of each ID, all or nothing
func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: reorder list is empty", ErrInvalidInput)
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: image id=%d listed twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for position, id := range ids {
			if err := s.imageRepo.SetDisplayOrder(txCtx, id, position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, imageRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("Reorder: %v", err)
		return fmt.Errorf("%w: Reorder - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reorder: %d images reordered", len(ids))
	return nil
}

// Delete removes the row, promoting the next image when the primary goes away,
// then drops the blob. Blob failures are logged only.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var deleted *domain.AccommodationImage
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		img, err := s.imageRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.imageRepo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = img

		if !img.IsPrimary {
			return nil
		}
		next, err := s.imageRepo.First(txCtx, img.AccommodationID)
		if errors.Is(err, imageRepo.ErrImageNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.imageRepo.MarkPrimary(txCtx, next.ID)
	})
	if err != nil {
		if errors.Is(err, imageRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("Delete: image id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.blobs.Delete(ctx, deleted.BlobKey); err != nil {
		s.logger.Warn("Delete: blob %s not removed: %v", deleted.BlobKey, err)
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, deleted.BlobKey); err != nil {
			s.logger.Warn("Delete: cache entry %s not removed: %v", deleted.BlobKey, err)
		}
	}

	s.logger.Info("Delete: image id=%d deleted", id)
	return nil
}

// Open returns the bytes behind a public image key
func (s *Service) Open(ctx context.Context, key string) (*domain.ImageFile, error) {
	if !validKey(key) {
		return nil, ErrImageNotFound
	}

	if s.cache != nil {
		file, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("Open: cache read %s failed: %v", key, err)
		}
		if ok {
			return file, nil
		}
	}

	file, err := s.blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			return nil, ErrImageNotFound
		}
		s.logger.Error("Open: blob get %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: Open - blob get: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, file); err != nil {
			s.logger.Warn("Open: cache write %s failed: %v", key, err)
		}
	}

	return file, nil
}

func validKey(key string) bool {
	return strings.HasPrefix(key, domain.AccommodationKeyspace+"/") &&
		!strings.Contains(key, "..") &&
		!strings.Contains(key, "//")
}
