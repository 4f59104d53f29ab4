// Package restaurantrepo persists the restaurant catalog: restaurants with their ordered menus.
package restaurantrepo

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name         string        `gorm:"type:varchar(255);not null;index"`
	Description  string        `gorm:"type:text;not null"`
	Image        string        `gorm:"type:text"`
	Cuisine      CuisineList   `gorm:"not null"`
	Rating       float64       `gorm:"not null"`
	DeliveryTime string        `gorm:"type:varchar(64)"`
	DeliveryFee  int64         `gorm:"not null"`
	MinimumOrder int64         `gorm:"not null"`
	IsOpen       bool          `gorm:"not null"`
	Tagline      string        `gorm:"type:varchar(255)"`
	Address      AddressDTO    `gorm:"embedded;embeddedPrefix:address_"`
	Menu         []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `gorm:"not null;index;autoCreateTime:false"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is one dish of a restaurant menu. Position keeps menu order.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	Price        int64     `gorm:"not null"`
	Image        string    `gorm:"type:text"`
	Category     string    `gorm:"type:varchar(32);not null"`
	IsVeg        bool      `gorm:"not null"`
	IsAvailable  bool      `gorm:"not null"`
	Tagline      string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// AddressDTO represents the embedded restaurant address.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
	Phone   string `gorm:"type:varchar(64)"`
}

// CuisineList is stored as a native text[] on PostgreSQL and as the same array literal
// in a text column elsewhere.
type CuisineList struct {
	pq.StringArray
}

// GormDataType keeps GORM from treating the struct as a relation.
func (CuisineList) GormDataType() string {
	return "text"
}

// GormDBDataType picks the column type per dialect.
func (CuisineList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	restaurantID := r.ID().Bytes()
	profile := r.Profile()

	menu := make([]MenuItemDTO, 0, len(r.Menu()))
	for i, item := range r.Menu() {
		menu = append(menu, MenuItemDTO{
			ID:           item.ID().Bytes(),
			RestaurantID: restaurantID,
			Position:     i,
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price.Amount(),
			Image:        item.Image,
			Category:     item.Category.String(),
			IsVeg:        item.IsVeg,
			IsAvailable:  item.IsAvailable,
			Tagline:      item.Tagline,
		})
	}

	return RestaurantDTO{
		ID:           restaurantID,
		Name:         profile.Name,
		Description:  profile.Description,
		Image:        profile.Image,
		Cuisine:      CuisineList{StringArray: pq.StringArray(profile.Cuisine)},
		Rating:       profile.Rating,
		DeliveryTime: profile.DeliveryTime,
		DeliveryFee:  profile.DeliveryFee.Amount(),
		MinimumOrder: profile.MinimumOrder.Amount(),
		IsOpen:       profile.IsOpen,
		Tagline:      profile.Tagline,
		Address: AddressDTO{
			Street:  profile.Address.Street(),
			City:    profile.Address.City(),
			State:   profile.Address.State(),
			ZipCode: profile.Address.ZipCode(),
			Phone:   profile.Address.Phone(),
		},
		Menu:      menu,
		CreatedAt: r.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through NewRestaurant, which re-applies the catalog rules.
// Menu items must already be sorted by position.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menu := make([]restaurant.MenuItem, 0, len(dto.Menu))
	for _, itemDTO := range dto.Menu {
		item, itemErr := menuItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	minimumOrder, err := kernel.NewMoney(dto.MinimumOrder)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, restaurant.Profile{
		Name:         dto.Name,
		Description:  dto.Description,
		Image:        dto.Image,
		Cuisine:      []string(dto.Cuisine.StringArray),
		Rating:       dto.Rating,
		DeliveryTime: dto.DeliveryTime,
		DeliveryFee:  deliveryFee,
		MinimumOrder: minimumOrder,
		IsOpen:       dto.IsOpen,
		Tagline:      dto.Tagline,
		Address: kernel.NewAddress(
			dto.Address.Street,
			dto.Address.City,
			dto.Address.State,
			dto.Address.ZipCode,
			dto.Address.Phone,
		),
	}, menu, dto.CreatedAt)
}

func menuItemToDomain(dto MenuItemDTO) (restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return restaurant.MenuItem{}, err
	}
	category, err := restaurant.ParseCategory(dto.Category)
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	return restaurant.NewMenuItem(id, restaurant.MenuItemDetails{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       price,
		Image:       dto.Image,
		Category:    category,
		IsVeg:       dto.IsVeg,
		IsAvailable: dto.IsAvailable,
		Tagline:     dto.Tagline,
	})
}
