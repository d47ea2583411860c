package customer

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through its constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a buyer managed by the back office.
//
// Name is the only mandatory attribute. Contact details are free-form and
// optional. A customer may reference an avatar stored in the media store.
// Orders keep their own customer reference, so deleting a customer leaves
// historical orders intact.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	city      string
	avatarID  *kernel.UUID
	active    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates an active customer with the current UTC time as its
// creation timestamp. Email, phone and city may be empty.
func NewCustomer(id kernel.UUID, name string, email string, phone string, city string) (*Customer, error) {
	customer := &Customer{
		active:    true,
		createdAt: time.Now().UTC(),
	}

	err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	)
	if err != nil {
		return nil, err
	}

	customer.email = email
	customer.phone = phone
	customer.city = city

	customer.guard = guard.NewConstructorGuard()
	return customer, nil
}

// RestoreCustomer reconstructs a customer from persisted state.
func RestoreCustomer(id kernel.UUID, name string, email string, phone string, city string,
	avatarID *kernel.UUID, active bool, createdAt time.Time) (*Customer, error) {
	customer := &Customer{
		active: active,
	}

	err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}

	customer.email = email
	customer.phone = phone
	customer.city = city

	if avatarID != nil {
		if err := avatarID.Validate(); err != nil {
			return nil, err
		}
		avatar := *avatarID
		customer.avatarID = &avatar
	}

	customer.guard = guard.NewConstructorGuard()
	return customer, nil
}

// Validate checks that the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the contact email, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// City returns the customer city, possibly empty.
func (c *Customer) City() string {
	return c.city
}

// AvatarID returns the media reference of the avatar, or nil when none is set.
func (c *Customer) AvatarID() *kernel.UUID {
	return c.avatarID
}

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool {
	return c.active
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Update replaces the editable attributes. The avatar reference is kept as-is
// so that an update without a new upload does not drop the existing avatar.
func (c *Customer) Update(name string, email string, phone string, city string, active bool) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.setName(name); err != nil {
		return err
	}

	c.email = email
	c.phone = phone
	c.city = city
	c.active = active
	return nil
}

// AttachAvatar links a stored media file as the customer avatar, replacing
// any previous one.
func (c *Customer) AttachAvatar(mediaID kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := mediaID.Validate(); err != nil {
		return err
	}

	c.avatarID = &mediaID
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	c.name = name
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	c.createdAt = createdAt
	return nil
}
