package restaurantrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"wiggy/internal/adapters/out/postgres/restaurantrepo"
	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RestaurantRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
}

func TestRestaurantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryTestSuite))
}

func (suite *RestaurantRepositoryTestSuite) SetupTest() {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(suite.T().Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.T().Cleanup(func() { _ = sqlDB.Close() })

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}, &restaurantrepo.MenuItemDTO{}))
	suite.db = db
	suite.repository = restaurantrepo.NewGormRestaurantRepository(db, nil)
}

func (suite *RestaurantRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	r := suite.createRestaurant("Dosa Dynasty", "South Indian breakfast all day", []string{"Indian", "South Indian"},
		4.6, "20-30 mins", time.Now().UTC(), "Masala Dosa", "Filter Coffee", "Medu Vada")

	suite.Require().NoError(suite.repository.Add(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(r.Profile(), got.Profile())
	suite.Equal(r.Menu(), got.Menu())
	suite.WithinDuration(r.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (suite *RestaurantRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryTestSuite) TestList_FiltersAndSorts() {
	ctx := context.Background()
	now := time.Now().UTC()
	dosa := suite.createRestaurant("Dosa Dynasty", "South Indian breakfast", []string{"Indian"}, 4.6, "20-30 mins", now.Add(-2*time.Hour), "Dosa")
	pizza := suite.createRestaurant("Pizza What", "Confused about PIZZA since 1999", []string{"Italian", "Pizza"}, 3.8, "30-45 mins", now.Add(-time.Hour), "Margherita")
	burger := suite.createRestaurant("Burger Singh", "Punjabi pizza and burgers", []string{"Indian", "Fast Food"}, 4.5, "10-20 mins", now, "Burger")
	for _, r := range []*restaurant.Restaurant{dosa, pizza, burger} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	tests := map[string]struct {
		filter ports.RestaurantFilter
		want   []*restaurant.Restaurant
	}{
		"newest first by default": {ports.RestaurantFilter{}, []*restaurant.Restaurant{burger, pizza, dosa}},
		"by rating":               {ports.RestaurantFilter{SortBy: ports.SortByRating}, []*restaurant.Restaurant{dosa, burger, pizza}},
		"by delivery time":        {ports.RestaurantFilter{SortBy: ports.SortByDeliveryTime}, []*restaurant.Restaurant{burger, dosa, pizza}},
		"by name":                 {ports.RestaurantFilter{SortBy: ports.SortByName}, []*restaurant.Restaurant{burger, dosa, pizza}},
		"cuisine":                 {ports.RestaurantFilter{Cuisine: "Indian", SortBy: ports.SortByName}, []*restaurant.Restaurant{burger, dosa}},
		"cuisine is exact":        {ports.RestaurantFilter{Cuisine: "indian"}, []*restaurant.Restaurant{}},
		"search ignores case":     {ports.RestaurantFilter{Search: "pizza", SortBy: ports.SortByName}, []*restaurant.Restaurant{burger, pizza}},
		"search and cuisine":      {ports.RestaurantFilter{Search: "pizza", Cuisine: "Italian"}, []*restaurant.Restaurant{pizza}},
		"search is literal":       {ports.RestaurantFilter{Search: "%"}, []*restaurant.Restaurant{}},
	}

	for name, tt := range tests {
		suite.Run(name, func() {
			got, err := suite.repository.List(ctx, tt.filter)
			suite.Require().NoError(err)
			suite.Equal(ids(tt.want), ids(got))
		})
	}
}

func (suite *RestaurantRepositoryTestSuite) TestSeed_OnlyIntoEmptyCatalog() {
	ctx := context.Background()

	added, err := restaurantrepo.Seed(ctx, suite.repository, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(3, added)

	added, err = restaurantrepo.Seed(ctx, suite.repository, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Zero(added)

	all, err := suite.repository.List(ctx, ports.RestaurantFilter{SortBy: ports.SortByRating})
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Burger Singh", all[0].Name())
	suite.Len(all[0].Menu(), 4)

	fastFood, err := suite.repository.List(ctx, ports.RestaurantFilter{Cuisine: "Fast Food", SortBy: ports.SortByName})
	suite.Require().NoError(err)
	suite.Require().Len(fastFood, 2)
	suite.Equal("Burger Singh", fastFood[0].Name())
	suite.Equal("McDonut's", fastFood[1].Name())
}

func (suite *RestaurantRepositoryTestSuite) createRestaurant(
	name, description string,
	cuisine []string,
	rating float64,
	deliveryTime string,
	createdAt time.Time,
	dishes ...string,
) *restaurant.Restaurant {
	categories := restaurant.Categories()
	menu := make([]restaurant.MenuItem, 0, len(dishes))
	for i, dish := range dishes {
		price, err := kernel.NewMoney(int64(50 + 10*i))
		suite.Require().NoError(err)
		item, err := restaurant.NewMenuItem(kernel.NewUUID(), restaurant.MenuItemDetails{
			Name:        dish,
			Description: dish + " as nature intended",
			Price:       price,
			Category:    categories[i%len(categories)],
			IsVeg:       i%2 == 0,
			IsAvailable: i != 1,
			Tagline:     "no refunds",
		})
		suite.Require().NoError(err)
		menu = append(menu, item)
	}

	fee, err := kernel.NewMoney(25)
	suite.Require().NoError(err)
	minimum, err := kernel.NewMoney(99)
	suite.Require().NoError(err)

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Profile{
		Name:         name,
		Description:  description,
		Cuisine:      cuisine,
		Rating:       rating,
		DeliveryTime: deliveryTime,
		DeliveryFee:  fee,
		MinimumOrder: minimum,
		IsOpen:       true,
		Tagline:      "probably food",
		Address:      kernel.NewAddress("1 Main St", "Springfield", "", "00001", ""),
	}, menu, createdAt)
	suite.Require().NoError(err)
	return r
}

func ids(restaurants []*restaurant.Restaurant) []string {
	out := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.ID().String())
	}
	return out
}
