// Package userrepo persists customer accounts and their favorite restaurants.
package userrepo

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name         string        `gorm:"type:varchar(255);not null"`
	Email        string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Phone        string        `gorm:"type:varchar(64)"`
	Address      AddressDTO    `gorm:"embedded;embeddedPrefix:address_"`
	Quote        string        `gorm:"type:text"`
	Favorites    []FavoriteDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// FavoriteDTO links a user to a restaurant. Position keeps the order favorites were added in.
type FavoriteDTO struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"not null"`
}

// TableName specifies the database table name for favorites.
func (FavoriteDTO) TableName() string {
	return "user_favorites"
}

// AddressDTO represents the embedded user address.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
	Phone   string `gorm:"type:varchar(64)"`
}

func fromDomain(u *user.User) UserDTO {
	userID := u.ID().Bytes()
	return UserDTO{
		ID:           userID,
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Phone:        u.Phone(),
		Address: AddressDTO{
			Street:  u.Address().Street(),
			City:    u.Address().City(),
			State:   u.Address().State(),
			ZipCode: u.Address().ZipCode(),
			Phone:   u.Address().Phone(),
		},
		Quote:     u.Quote(),
		Favorites: favoritesFromDomain(userID, u.Favorites()),
		CreatedAt: u.CreatedAt(),
	}
}

func favoritesFromDomain(userID uuid.UUID, favorites []kernel.UUID) []FavoriteDTO {
	dtos := make([]FavoriteDTO, 0, len(favorites))
	for i, restaurantID := range favorites {
		dtos = append(dtos, FavoriteDTO{
			UserID:       userID,
			RestaurantID: restaurantID.Bytes(),
			Position:     i,
		})
	}
	return dtos
}

// toDomain rebuilds the user through RestoreUser. Favorites must already be sorted by position.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	favorites := make([]kernel.UUID, 0, len(dto.Favorites))
	for _, f := range dto.Favorites {
		restaurantID, idErr := kernel.UUIDFromBytes(f.RestaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		favorites = append(favorites, restaurantID)
	}

	address := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.ZipCode,
		dto.Address.Phone,
	)

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, dto.Phone, address, dto.Quote,
		favorites, dto.CreatedAt)
}
