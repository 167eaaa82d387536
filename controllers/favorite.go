package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/models"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
)

type favoriteRequest struct {
	PropertyID int `json:"propertyId"`
}

func AddFavorite(favorites *store.Favorites, cat *catalog.Catalog, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req favoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("Invalid request data: %v", err)
			http.Error(w, "Invalid request data", http.StatusBadRequest)
			return
		}

		if req.PropertyID == 0 {
			http.Error(w, "propertyId is required", http.StatusBadRequest)
			return
		}

		if _, err := cat.PropertyByID(req.PropertyID); errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		alreadyPresent := favorites.IsFavorite(req.PropertyID)
		if err := favorites.Add(r.Context(), req.PropertyID); err != nil {
			log.Errorf("Failed to add property %d to favorites: %v", req.PropertyID, err)
			http.Error(w, "Failed to add property to favorites", http.StatusInternalServerError)
			return
		}

		message := "Property added to favorites"
		status := http.StatusCreated
		if alreadyPresent {
			message = "Property already in favorites"
			status = http.StatusOK
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: message,
		})
	}
}

// GetFavorites resolves the favorited ids against the catalog and returns
// the full records. Ids that no longer resolve are skipped.
func GetFavorites(favorites *store.Favorites, cat *catalog.Catalog, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := favorites.IDs()
		properties := make([]models.Property, 0, len(ids))
		for _, id := range ids {
			property, err := cat.PropertyByID(id)
			if err != nil {
				log.Warnf("Favorited property %d is no longer in the catalog", id)
				continue
			}
			property.IsFavorite = true
			properties = append(properties, property)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched favorite properties",
			Data:    properties,
		})
	}
}

func RemoveFavorite(favorites *store.Favorites, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			log.Warnf("Invalid property ID format: %v", err)
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
			return
		}

		if err := favorites.Remove(r.Context(), id); err != nil {
			log.Errorf("Failed to remove property %d from favorites: %v", id, err)
			http.Error(w, "Failed to remove property from favorites", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Property removed from favorites",
		})
	}
}
