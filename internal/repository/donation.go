package repository

import (
	"context"
	"time"

	"futurefunded/internal/model"

	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	FindByProviderRef(ctx context.Context, providerRef string) (*model.Donation, error)
	MarkCaptured(ctx context.Context, providerRef, status string, capturedCents *int64) error
}

type donationRepoImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepoImpl{
		db: db,
	}
}

func (r *donationRepoImpl) Create(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepoImpl) FindByProviderRef(ctx context.Context, providerRef string) (*model.Donation, error) {
	var donation model.Donation
	err := r.db.WithContext(ctx).
		Where("provider_ref = ?", providerRef).
		First(&donation).Error

	if err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *donationRepoImpl) MarkCaptured(ctx context.Context, providerRef, status string, capturedCents *int64) error {
	result := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("provider_ref = ?", providerRef).
		Updates(map[string]interface{}{
			"status":         status,
			"captured_cents": capturedCents,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
