package catalog

import "github.com/AbdullahAbukalaf/real-estate-reign/models"

// Seed builds the catalog from the bundled dataset. This is the default data
// source when no listings database is configured.
func Seed() *Catalog {
	return New(seedProperties(), seedAgents())
}

func seedProperties() []models.Property {
	return []models.Property{
		{
			ID:        1,
			Title:     "Modern Luxury Villa",
			Address:   "123 Oceanview Drive, Malibu, CA",
			Price:     2750000,
			Bedrooms:  5,
			Bathrooms: 4,
			SqFt:      3800,
			Image:     "https://images.unsplash.com/photo-1613490493576-7fde63acd811?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeHouse,
			Status:    models.StatusForSale,
		},
		{
			ID:        2,
			Title:     "Downtown Loft Apartment",
			Address:   "456 Urban Ave, New York, NY",
			Price:     850000,
			Bedrooms:  2,
			Bathrooms: 2,
			SqFt:      1200,
			Image:     "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeApartment,
			Status:    models.StatusForSale,
		},
		{
			ID:        3,
			Title:     "Classic Suburban Home",
			Address:   "789 Maple St, Chicago, IL",
			Price:     450000,
			Bedrooms:  4,
			Bathrooms: 3,
			SqFt:      2400,
			Image:     "https://images.unsplash.com/photo-1570129477492-45c003edd2be?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeHouse,
			Status:    models.StatusForSale,
		},
		{
			ID:        4,
			Title:     "Waterfront Condominium",
			Address:   "101 Harbor View, Seattle, WA",
			Price:     1200000,
			Bedrooms:  3,
			Bathrooms: 2,
			SqFt:      1800,
			Image:     "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeCondo,
			Status:    models.StatusForSale,
		},
		{
			ID:        5,
			Title:     "City Center Apartment",
			Address:   "555 Downtown Blvd, San Francisco, CA",
			Price:     3500,
			Bedrooms:  1,
			Bathrooms: 1,
			SqFt:      850,
			Image:     "https://images.unsplash.com/photo-1554995207-c18c203602cb?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeApartment,
			Status:    models.StatusForRent,
		},
		{
			ID:        6,
			Title:     "Rustic Country Estate",
			Address:   "777 Rural Route, Austin, TX",
			Price:     1750000,
			Bedrooms:  6,
			Bathrooms: 4.5,
			SqFt:      4200,
			Image:     "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeHouse,
			Status:    models.StatusForSale,
		},
		{
			ID:        7,
			Title:     "Modern Office Space",
			Address:   "888 Business Park, Denver, CO",
			Price:     875000,
			Bedrooms:  0,
			Bathrooms: 2,
			SqFt:      2500,
			Image:     "https://images.unsplash.com/photo-1497366754035-f200968a6e72?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeCommercial,
			Status:    models.StatusForSale,
		},
		{
			ID:        8,
			Title:     "Beachfront Vacation Home",
			Address:   "222 Shore Dr, Miami, FL",
			Price:     1950000,
			Bedrooms:  4,
			Bathrooms: 3,
			SqFt:      2800,
			Image:     "https://images.unsplash.com/photo-1499793983690-e29da59ef1c2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeHouse,
			Status:    models.StatusForSale,
		},
		{
			ID:        9,
			Title:     "Mountain View Cabin",
			Address:   "333 Alpine Way, Aspen, CO",
			Price:     820000,
			Bedrooms:  3,
			Bathrooms: 2,
			SqFt:      1650,
			Image:     "https://images.unsplash.com/photo-1542718610-a1d656d1884c?ixlib=rb-1.2.1&auto=format&fit=crop&w=1600&q=80",
			Type:      models.TypeHouse,
			Status:    models.StatusForSale,
		},
	}
}

func seedAgents() []models.Agent {
	return []models.Agent{
		{
			ID:          1,
			Name:        "Jennifer Moore",
			Title:       "Senior Real Estate Agent",
			Phone:       "(555) 123-4567",
			Email:       "jennifer@estatehub.com",
			Image:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Bio:         "With over 15 years of experience in luxury real estate, Jennifer specializes in high-end properties and investment opportunities.",
			Listings:    24,
			Specialties: []string{"Luxury Homes", "Waterfront Properties", "Investment Properties"},
		},
		{
			ID:          2,
			Name:        "Michael Stephens",
			Title:       "Commercial Property Specialist",
			Phone:       "(555) 234-5678",
			Email:       "michael@estatehub.com",
			Image:       "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Bio:         "Michael has a background in commercial real estate development and helps businesses find the perfect location for their needs.",
			Listings:    18,
			Specialties: []string{"Commercial", "Office Spaces", "Retail Properties"},
		},
		{
			ID:          3,
			Name:        "Sophia Rodriguez",
			Title:       "Residential Sales Specialist",
			Phone:       "(555) 345-6789",
			Email:       "sophia@estatehub.com",
			Image:       "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Bio:         "Sophia is passionate about helping first-time homebuyers find their dream home within their budget.",
			Listings:    30,
			Specialties: []string{"Residential", "First-time Buyers", "Urban Apartments"},
		},
		{
			ID:          4,
			Name:        "David Wilson",
			Title:       "Luxury Property Consultant",
			Phone:       "(555) 456-7890",
			Email:       "david@estatehub.com",
			Image:       "https://images.unsplash.com/photo-1566492031773-4f4e44671857?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Bio:         "David specializes in exclusive properties and has a network of high-net-worth clients looking for their next investment.",
			Listings:    15,
			Specialties: []string{"Luxury Estates", "Private Sales", "International Clients"},
		},
	}
}
