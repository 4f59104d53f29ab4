package userrepo

import (
	"context"
	"errors"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/user"
	"wiggy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository. The tracker may be nil.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user. The unique email index backs the duplicate check, so the
// database must be opened with gorm.Config.TranslateError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("user")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("email", aggregate.Email())
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update rewrites the profile columns and replaces the favorites list.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("user")
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":             dto.Name,
		"phone":            dto.Phone,
		"address_street":   dto.Address.Street,
		"address_city":     dto.Address.City,
		"address_state":    dto.Address.State,
		"address_zip_code": dto.Address.ZipCode,
		"address_phone":    dto.Address.Phone,
		"quote":            dto.Quote,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	if err := db.Where("user_id = ?", dto.ID).Delete(&FavoriteDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Favorites) > 0 {
		if err := db.Create(&dto.Favorites).Error; err != nil {
			return err
		}
	}

	r.track(aggregate)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return r.first(ctx, "email", email, "email = ?", email)
}

func (r *GormUserRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) track(aggregate *user.User) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
