package http

import (
	"net/http"

	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetRestaurants handles GET /api/restaurants?cuisine=&search=&sortBy=.
func (s *Server) GetRestaurants(c echo.Context) error {
	var params [3]string
	for i, name := range []string{"cuisine", "search", "sortBy"} {
		value, err := optionalQuery(c, name)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid query parameter " + name})
		}
		params[i] = value
	}

	query := queries.NewGetRestaurantsQuery(params[0], params[1], params[2])
	restaurants, err := s.handlers.GetRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get restaurants")
	}

	response := make([]restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, restaurantFromDomain(r))
	}
	return c.JSON(http.StatusOK, restaurantListResponse{
		Message:     "Restaurants retrieved successfully",
		Count:       len(response),
		Restaurants: response,
	})
}

// GetRestaurant handles GET /api/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	restaurantID, ok := pathID(c)
	if !ok {
		return notFound(c, "Restaurant not found")
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.fail(c, err, "Failed to get restaurant")
	}

	r, err := s.handlers.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get restaurant")
	}

	return c.JSON(http.StatusOK, restaurantEnvelope{
		Message:    "Restaurant details retrieved",
		Restaurant: restaurantFromDomain(r),
	})
}

// GetRestaurantMenu handles GET /api/restaurants/:id/menu?category=.
func (s *Server) GetRestaurantMenu(c echo.Context) error {
	restaurantID, ok := pathID(c)
	if !ok {
		return notFound(c, "Restaurant not found")
	}
	category, err := optionalQuery(c, "category")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid query parameter category"})
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID, category)
	if err != nil {
		return s.fail(c, err, "Failed to get menu")
	}

	menu, err := s.handlers.GetRestaurantMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get menu")
	}

	return c.JSON(http.StatusOK, menuResponse{
		Message:        "Menu retrieved successfully",
		RestaurantName: menu.RestaurantName,
		Menu:           menuFromDomain(menu.Menu),
	})
}

// AddFavoriteRestaurant handles POST /api/restaurants/:id/favorite.
func (s *Server) AddFavoriteRestaurant(c echo.Context) error {
	restaurantID, ok := pathID(c)
	if !ok {
		return notFound(c, "Restaurant not found")
	}

	cmd, err := commands.NewAddFavoriteRestaurantCommand(currentUserID(c), restaurantID)
	if err != nil {
		return s.fail(c, err, "Failed to add to favorites")
	}

	if err := s.handlers.AddFavorite.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to add to favorites")
	}

	return c.JSON(http.StatusOK, errorResponse{Message: "Added to favorites"})
}
