// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table; the delivery address is embedded.
// Timestamps are owned by the domain, so GORM must not touch them.
type OrderDTO struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount           int64          `gorm:"not null"`
	DeliveryFee           int64          `gorm:"not null"`
	Tax                   int64          `gorm:"not null"`
	FinalAmount           int64          `gorm:"not null"`
	Status                string         `gorm:"type:varchar(32);not null;index"`
	StatusMessage         string         `gorm:"type:text"`
	DeliveryAddress       AddressDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	Notes                 string         `gorm:"type:text"`
	EstimatedDeliveryTime string         `gorm:"type:varchar(64)"`
	CreatedAt             time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt             time.Time      `gorm:"not null;index;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one priced line of an order. Position keeps checkout order.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	UnitPrice  int64     `gorm:"not null"`
	Image      string    `gorm:"type:text"`
	Quantity   int       `gorm:"not null"`
	Total      int64     `gorm:"not null"`
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
	Phone   string `gorm:"type:varchar(64)"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice().Amount(),
			Image:      item.Image(),
			Quantity:   item.Quantity(),
			Total:      item.Total().Amount(),
		})
	}

	totals := o.Totals()
	details := o.Details()
	return OrderDTO{
		ID:            orderID,
		UserID:        o.UserID().Bytes(),
		RestaurantID:  o.RestaurantID().Bytes(),
		Items:         items,
		TotalAmount:   totals.TotalAmount.Amount(),
		DeliveryFee:   totals.DeliveryFee.Amount(),
		Tax:           totals.Tax.Amount(),
		FinalAmount:   totals.FinalAmount.Amount(),
		Status:        o.Status().String(),
		StatusMessage: o.StatusMessage(),
		DeliveryAddress: AddressDTO{
			Street:  details.DeliveryAddress.Street(),
			City:    details.DeliveryAddress.City(),
			State:   details.DeliveryAddress.State(),
			ZipCode: details.DeliveryAddress.ZipCode(),
			Phone:   details.DeliveryAddress.Phone(),
		},
		Notes:                 details.Notes,
		EstimatedDeliveryTime: details.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		DeliveryAddress: kernel.NewAddress(
			dto.DeliveryAddress.Street,
			dto.DeliveryAddress.City,
			dto.DeliveryAddress.State,
			dto.DeliveryAddress.ZipCode,
			dto.DeliveryAddress.Phone,
		),
		Notes:                 dto.Notes,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
	}

	return order.RestoreOrder(id, userID, restaurantID, items, totals, status, dto.StatusMessage,
		details, dto.CreatedAt, dto.UpdatedAt)
}

func lineItemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(menuItemID, dto.Name, unitPrice, dto.Image, dto.Quantity)
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	totalAmount, totalErr := kernel.NewMoney(dto.TotalAmount)
	deliveryFee, feeErr := kernel.NewMoney(dto.DeliveryFee)
	tax, taxErr := kernel.NewMoney(dto.Tax)
	finalAmount, finalErr := kernel.NewMoney(dto.FinalAmount)
	if err := errors.Join(totalErr, feeErr, taxErr, finalErr); err != nil {
		return order.Totals{}, err
	}

	return order.Totals{
		TotalAmount: totalAmount,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		FinalAmount: finalAmount,
	}, nil
}
