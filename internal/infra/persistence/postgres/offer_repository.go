package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Aggregate subqueries over the offer's detail rows. Filtering and ordering on
// min_price / min_delivery_time must see the current detail values, so they are
// computed per query instead of being stored on the offer row.
const (
	minPriceSubquery    = "(SELECT MIN(od.price) FROM offer_details od WHERE od.offer_id = offers.id)"
	minDeliverySubquery = "(SELECT MIN(od.delivery_time_in_days) FROM offer_details od WHERE od.offer_id = offers.id)"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// List retrieves one page of offers matching the query plus the total match count.
func (repo *offerRepository) List(ctx context.Context, query repository.OfferQuery) ([]*entity.Offer, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OfferModel{})

	if query.CreatorID != nil {
		tx = tx.Where("user_id = ?", *query.CreatorID)
	}
	if query.MinPrice != nil {
		tx = tx.Where(minPriceSubquery+" >= ?", *query.MinPrice)
	}
	if query.MaxDeliveryTime != nil {
		tx = tx.Where(minDeliverySubquery+" <= ?", *query.MaxDeliveryTime)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	switch query.Ordering {
	case repository.OfferOrderUpdatedAtAsc:
		tx = tx.Order("updated_at ASC")
	case repository.OfferOrderUpdatedAtDesc:
		tx = tx.Order("updated_at DESC")
	case repository.OfferOrderMinPriceAsc:
		tx = tx.Order(minPriceSubquery + " ASC")
	case repository.OfferOrderMinPriceDesc:
		tx = tx.Order(minPriceSubquery + " DESC")
	default:
		// Unknown values keep the store's insertion order.
		tx = tx.Order("created_at ASC")
	}

	if query.PageSize > 0 {
		offset := 0
		if query.Page > 1 {
			offset = (query.Page - 1) * query.PageSize
		}
		tx = tx.Offset(offset).Limit(query.PageSize)
	}

	var offerModels []*model.OfferModel
	if err := tx.
		Preload("Details").
		Preload("User.Profile").
		Preload("User").
		Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, model.ToOfferDomain(offerM))
	}

	return offers, total, nil
}

// FindByID retrieves a single offer with its details and owner.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Preload("User.Profile").
		Preload("User").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return model.ToOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single offer detail.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by ID")
	}

	return model.ToOfferDetailDomain(&detailM), nil
}

// Create persists a new offer together with all of its details.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := model.FromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("duplicate offer detail tier")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid offer owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	// Update the entity with generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i, detailM := range offerM.Details {
		offer.Details[i].ID = detailM.ID
		offer.Details[i].OfferID = offerM.ID
	}

	return nil
}

// Save writes back a mutated offer including its details.
func (repo *offerRepository) Save(ctx context.Context, offer *entity.Offer) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OfferModel{}).
			Where("id = ?", offer.ID).
			Updates(map[string]any{
				"title":       offer.Title,
				"image":       offer.Image,
				"description": offer.Description,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrOfferNotFound
		}

		for _, detail := range offer.Details {
			detailM := model.FromOfferDetailDomain(detail)
			if err := tx.Model(&model.OfferDetailModel{}).
				Where("id = ? AND offer_id = ?", detail.ID, offer.ID).
				Updates(map[string]any{
					"title":                 detailM.Title,
					"revisions":             detailM.Revisions,
					"delivery_time_in_days": detailM.DeliveryTimeInDays,
					"price":                 detailM.Price,
					"features":              detailM.Features,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return repository.ErrOfferNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save offer")
	}

	return nil
}

// Delete removes an offer. Details cascade and order back-references are nulled
// by the schema's foreign key actions.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}
