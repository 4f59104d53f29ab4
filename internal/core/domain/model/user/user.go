package user

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"
)

// MinPasswordLength applies to the plain-text password before hashing.
const MinPasswordLength = 6

// User is a registered customer. The password is only ever held as an encoded hash.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	address      kernel.Address
	quote        string
	favorites    []kernel.UUID
	createdAt    time.Time
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks a plain-text password before it is hashed.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength),
		)
	}
	return nil
}

// NewUser registers a customer with no favorites.
func NewUser(
	id kernel.UUID,
	name, email, passwordHash, phone string,
	address kernel.Address,
	quote string,
	now time.Time,
) (*User, error) {
	return RestoreUser(id, name, email, passwordHash, phone, address, quote, nil, now)
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash, phone string,
	address kernel.Address,
	quote string,
	favorites []kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:     strings.TrimSpace(phone),
		address:   address,
		quote:     quote,
		favorites: slices.Clone(favorites),
		createdAt: createdAt,
	}

	var hashErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash

	if err := errors.Join(
		id.Validate(),
		u.setName(name),
		u.setEmail(email),
		hashErr,
	); err != nil {
		return nil, err
	}
	u.id = id

	return u, nil
}

func (u *User) ID() kernel.UUID         { return u.id }
func (u *User) Name() string            { return u.name }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Phone() string           { return u.phone }
func (u *User) Address() kernel.Address { return u.address }
func (u *User) Quote() string           { return u.quote }
func (u *User) CreatedAt() time.Time    { return u.createdAt }

// Favorites returns favorite restaurant ids in the order they were added.
func (u *User) Favorites() []kernel.UUID {
	return slices.Clone(u.favorites)
}

// HasFavorite reports whether restaurantID is already a favorite.
func (u *User) HasFavorite(restaurantID kernel.UUID) bool {
	return slices.ContainsFunc(u.favorites, restaurantID.IsEqual)
}

// AddFavorite appends restaurantID; adding the same restaurant twice is an error.
func (u *User) AddFavorite(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if u.HasFavorite(restaurantID) {
		return errs.NewObjectAlreadyExistsError("favorite restaurant", restaurantID)
	}
	u.favorites = append(u.favorites, restaurantID)
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}
