package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/engine"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
)

// notFoundResponse carries a recovery link so an unknown id resolves to a
// navigable state instead of a dead end.
type notFoundResponse struct {
	Message  string `json:"message"`
	Listings string `json:"listings"`
}

// ListProperties filters and sorts the catalog from query parameters and
// decorates each result with its favorite flag.
func ListProperties(cat *catalog.Catalog, favorites *store.Favorites, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		criteria := engine.CriteriaFromQuery(query)
		results := engine.Filter(cat.Properties(), criteria)
		results = engine.SortProperties(results, query.Get("sort"))

		for i := range results {
			results[i].IsFavorite = favorites.IsFavorite(results[i].ID)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			log.Errorf("Failed to encode properties: %v", err)
		}
	}
}

func GetProperty(cat *catalog.Catalog, favorites *store.Favorites, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			log.Warnf("Invalid property ID %q: %v", mux.Vars(r)["id"], err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		property, err := cat.PropertyByID(id)
		if errors.Is(err, catalog.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(notFoundResponse{
				Message:  "The property you are looking for does not exist or has been removed.",
				Listings: "/properties",
			})
			return
		}

		property.IsFavorite = favorites.IsFavorite(property.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)
	}
}

func ListAgents(cat *catalog.Catalog, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cat.Agents()); err != nil {
			log.Errorf("Failed to encode agents: %v", err)
		}
	}
}
