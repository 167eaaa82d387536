package models

type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeCondo      PropertyType = "condo"
	TypeCommercial PropertyType = "commercial"
)

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "For Sale"
	StatusForRent PropertyStatus = "For Rent"
	StatusSold    PropertyStatus = "Sold"
)

// Property is a single listing record. The dataset is immutable after load,
// so identifiers stay stable for the lifetime of the process.
type Property struct {
	ID         int            `bson:"_id" json:"id"`
	Title      string         `bson:"title" json:"title"`
	Address    string         `bson:"address" json:"address"`
	Price      int            `bson:"price" json:"price"`
	Bedrooms   int            `bson:"bedrooms" json:"bedrooms"`
	Bathrooms  float64        `bson:"bathrooms" json:"bathrooms"`
	SqFt       int            `bson:"sqft" json:"sqft"`
	Image      string         `bson:"image" json:"image"`
	Type       PropertyType   `bson:"type" json:"type"`
	Status     PropertyStatus `bson:"status" json:"status"`
	IsFavorite bool           `bson:"-" json:"isFavorite,omitempty"`
}

func KnownPropertyType(s string) bool {
	switch PropertyType(s) {
	case TypeHouse, TypeApartment, TypeCondo, TypeCommercial:
		return true
	}
	return false
}

func KnownPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case StatusForSale, StatusForRent, StatusSold:
		return true
	}
	return false
}
