package restaurantrepo

import (
	"context"
	"errors"
	"strings"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository. The tracker may be nil.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant together with its menu.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("restaurant")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Get retrieves a restaurant with its menu in stored order.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.withMenu(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List applies the search and the sort in SQL. The cuisine filter runs on the loaded
// aggregates so the query stays the same on every dialect.
func (r *GormRestaurantRepository) List(ctx context.Context, filter ports.RestaurantFilter) ([]*restaurant.Restaurant, error) {
	query := r.withMenu(ctx)

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	var dtos []RestaurantDTO
	if err := query.Order(orderClause(filter.SortBy)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		if filter.Cuisine != "" && !rest.ServesCuisine(filter.Cuisine) {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

// Count reports how many restaurants are stored.
func (r *GormRestaurantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Count(&n).Error
	return n, err
}

func (r *GormRestaurantRepository) withMenu(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Menu", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func orderClause(sortBy ports.RestaurantSort) string {
	switch sortBy {
	case ports.SortByRating:
		return "rating DESC"
	case ports.SortByDeliveryTime:
		return "delivery_time ASC"
	case ports.SortByName:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the search term literal inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
