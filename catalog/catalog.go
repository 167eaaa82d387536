package catalog

import (
	"errors"

	"github.com/AbdullahAbukalaf/real-estate-reign/models"
)

var ErrNotFound = errors.New("property not found")

// Catalog holds the listing dataset. It is populated once at startup and
// never mutated afterwards; accessors hand out copies so callers cannot
// change the backing slices.
type Catalog struct {
	properties []models.Property
	byID       map[int]models.Property
	agents     []models.Agent
}

func New(properties []models.Property, agents []models.Agent) *Catalog {
	byID := make(map[int]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	return &Catalog{
		properties: properties,
		byID:       byID,
		agents:     agents,
	}
}

// Properties returns the full dataset in its natural ("newest") order.
func (c *Catalog) Properties() []models.Property {
	out := make([]models.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *Catalog) PropertyByID(id int) (models.Property, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	return p, nil
}

func (c *Catalog) Agents() []models.Agent {
	out := make([]models.Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

func (c *Catalog) Len() int {
	return len(c.properties)
}
