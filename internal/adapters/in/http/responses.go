package http

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/domain/model/user"
)

type errorResponse struct {
	Message string `json:"message"`
}

type addressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

func (a addressPayload) toDomain() kernel.Address {
	return kernel.NewAddress(a.Street, a.City, a.State, a.ZipCode, a.Phone)
}

func addressFromDomain(a kernel.Address) addressPayload {
	return addressPayload{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
		Phone:   a.Phone(),
	}
}

type orderItemResponse struct {
	MenuItem struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Image string `json:"image"`
	} `json:"menuItem"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}

type orderResponse struct {
	ID                    string              `json:"id"`
	User                  string              `json:"user"`
	Restaurant            string              `json:"restaurant"`
	Items                 []orderItemResponse `json:"items"`
	TotalAmount           int64               `json:"totalAmount"`
	DeliveryFee           int64               `json:"deliveryFee"`
	Tax                   int64               `json:"tax"`
	FinalAmount           int64               `json:"finalAmount"`
	Status                string              `json:"status"`
	StatusMessage         string              `json:"funnyStatusMessage"`
	DeliveryAddress       addressPayload      `json:"deliveryAddress"`
	OrderNotes            string              `json:"orderNotes"`
	EstimatedDeliveryTime string              `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

func orderFromDomain(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, li := range o.Items() {
		var item orderItemResponse
		item.MenuItem.ID = li.MenuItemID().String()
		item.MenuItem.Name = li.Name()
		item.MenuItem.Price = li.UnitPrice().Amount()
		item.MenuItem.Image = li.Image()
		item.Quantity = li.Quantity()
		item.Price = li.Total().Amount()
		items = append(items, item)
	}

	totals := o.Totals()
	details := o.Details()
	return orderResponse{
		ID:                    o.ID().String(),
		User:                  o.UserID().String(),
		Restaurant:            o.RestaurantID().String(),
		Items:                 items,
		TotalAmount:           totals.TotalAmount.Amount(),
		DeliveryFee:           totals.DeliveryFee.Amount(),
		Tax:                   totals.Tax.Amount(),
		FinalAmount:           totals.FinalAmount.Amount(),
		Status:                o.Status().String(),
		StatusMessage:         o.StatusMessage(),
		DeliveryAddress:       addressFromDomain(details.DeliveryAddress),
		OrderNotes:            details.Notes,
		EstimatedDeliveryTime: details.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

type orderEnvelope struct {
	Message string        `json:"message"`
	Order   orderResponse `json:"order"`
}

type orderListResponse struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Orders  []orderResponse `json:"orders"`
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	IsVeg       bool   `json:"isVeg"`
	IsAvailable bool   `json:"isAvailable"`
	Tagline     string `json:"funnyTagline"`
}

func menuFromDomain(menu []restaurant.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(menu))
	for _, item := range menu {
		out = append(out, menuItemResponse{
			ID:          item.ID().String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.Amount(),
			Image:       item.Image,
			Category:    item.Category.String(),
			IsVeg:       item.IsVeg,
			IsAvailable: item.IsAvailable,
			Tagline:     item.Tagline,
		})
	}
	return out
}

type restaurantResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Image        string             `json:"image"`
	Cuisine      []string           `json:"cuisine"`
	Rating       float64            `json:"rating"`
	DeliveryTime string             `json:"deliveryTime"`
	DeliveryFee  int64              `json:"deliveryFee"`
	MinimumOrder int64              `json:"minimumOrder"`
	IsOpen       bool               `json:"isOpen"`
	Tagline      string             `json:"funnyTagline"`
	Address      addressPayload     `json:"address"`
	Menu         []menuItemResponse `json:"menu"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func restaurantFromDomain(r *restaurant.Restaurant) restaurantResponse {
	profile := r.Profile()
	return restaurantResponse{
		ID:           r.ID().String(),
		Name:         profile.Name,
		Description:  profile.Description,
		Image:        profile.Image,
		Cuisine:      profile.Cuisine,
		Rating:       profile.Rating,
		DeliveryTime: profile.DeliveryTime,
		DeliveryFee:  profile.DeliveryFee.Amount(),
		MinimumOrder: profile.MinimumOrder.Amount(),
		IsOpen:       profile.IsOpen,
		Tagline:      profile.Tagline,
		Address:      addressFromDomain(profile.Address),
		Menu:         menuFromDomain(r.Menu()),
		CreatedAt:    r.CreatedAt(),
	}
}

type restaurantEnvelope struct {
	Message    string             `json:"message"`
	Restaurant restaurantResponse `json:"restaurant"`
}

type restaurantListResponse struct {
	Message     string               `json:"message"`
	Count       int                  `json:"count"`
	Restaurants []restaurantResponse `json:"restaurants"`
}

type menuResponse struct {
	Message        string             `json:"message"`
	RestaurantName string             `json:"restaurantName"`
	Menu           []menuItemResponse `json:"menu"`
}

type userResponse struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	Address             addressPayload `json:"address"`
	Quote               string         `json:"funnyQuote"`
	FavoriteRestaurants []string       `json:"favoriteRestaurants"`
	CreatedAt           time.Time      `json:"createdAt"`
}

func userFromDomain(u *user.User) userResponse {
	favorites := make([]string, 0, len(u.Favorites()))
	for _, id := range u.Favorites() {
		favorites = append(favorites, id.String())
	}
	return userResponse{
		ID:                  u.ID().String(),
		Name:                u.Name(),
		Email:               u.Email(),
		Phone:               u.Phone(),
		Address:             addressFromDomain(u.Address()),
		Quote:               u.Quote(),
		FavoriteRestaurants: favorites,
		CreatedAt:           u.CreatedAt(),
	}
}

type userEnvelope struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type sessionResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}
