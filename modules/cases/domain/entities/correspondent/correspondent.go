package correspondent

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Correspondent struct {
	id        uuid.UUID
	name      string
	country   string
	phone     *string
	email     *string
	createdAt time.Time
	updatedAt time.Time
}

func New(name, country string) *Correspondent {
	return &Correspondent{
		id:      uuid.New(),
		name:    strings.TrimSpace(name),
		country: strings.TrimSpace(country),
	}
}

func Hydrate(
	id uuid.UUID,
	name string,
	country string,
	phone *string,
	email *string,
	createdAt time.Time,
	updatedAt time.Time,
) *Correspondent {
	return &Correspondent{
		id:        id,
		name:      strings.TrimSpace(name),
		country:   strings.TrimSpace(country),
		phone:     phone,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Correspondent) ID() uuid.UUID        { return c.id }
func (c *Correspondent) Name() string         { return c.name }
func (c *Correspondent) Country() string      { return c.country }
func (c *Correspondent) Phone() *string       { return c.phone }
func (c *Correspondent) Email() *string       { return c.email }
func (c *Correspondent) CreatedAt() time.Time { return c.createdAt }
func (c *Correspondent) UpdatedAt() time.Time { return c.updatedAt }

func (c *Correspondent) SetContact(phone, email *string) {
	c.phone = phone
	c.email = email
}

func (c *Correspondent) SetName(name string) {
	c.name = strings.TrimSpace(name)
}

func (c *Correspondent) SetCountry(country string) {
	c.country = strings.TrimSpace(country)
}
