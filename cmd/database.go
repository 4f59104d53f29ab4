package cmd

import (
	"context"
	"time"

	"wiggy/internal/adapters/out/postgres/orderrepo"
	"wiggy/internal/adapters/out/postgres/restaurantrepo"
	"wiggy/internal/adapters/out/postgres/userrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects with the configured driver. Driver errors are translated into
// gorm's portable errors (gorm.ErrDuplicatedKey and friends).
func OpenDatabase(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if config.DBDriver == "sqlite" {
		dialector = sqlite.Open(config.SQLitePath)
	} else {
		dialector = gormpostgres.Open(config.PostgresDSN())
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&userrepo.UserDTO{},
		&userrepo.FavoriteDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

// SeedCatalog inserts the demo restaurants into an empty catalog.
func SeedCatalog(ctx context.Context, db *gorm.DB) (int, error) {
	return restaurantrepo.Seed(ctx, restaurantrepo.NewGormRestaurantRepository(db, nil), time.Now().UTC())
}
