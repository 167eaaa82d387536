package routes

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/booking"
	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/controllers"
	"github.com/AbdullahAbukalaf/real-estate-reign/middleware"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
)

// Deps is the dependency set handed to the route table. Everything is
// constructed once at process root and passed down explicitly.
type Deps struct {
	Catalog   *catalog.Catalog
	Favorites *store.Favorites
	Sessions  *store.Sessions
	Submitter booking.Submitter
	Log       *logrus.Logger
}

func Routes(router *mux.Router, d Deps) {
	// Auth routes
	router.HandleFunc("/login", controllers.Login(d.Sessions, d.Log)).Methods("POST")

	// Listing routes
	router.HandleFunc("/properties", controllers.ListProperties(d.Catalog, d.Favorites, d.Log)).Methods("GET")
	router.HandleFunc("/properties/{id}", controllers.GetProperty(d.Catalog, d.Favorites, d.Log)).Methods("GET")
	router.HandleFunc("/agents", controllers.ListAgents(d.Catalog, d.Log)).Methods("GET")

	// Favorites are scoped to the storage profile, not the session, so they
	// are deliberately outside the authenticated subrouter.
	router.HandleFunc("/favorites", controllers.AddFavorite(d.Favorites, d.Catalog, d.Log)).Methods("POST")
	router.HandleFunc("/favorites", controllers.GetFavorites(d.Favorites, d.Catalog, d.Log)).Methods("GET")
	router.HandleFunc("/favorites/{id}", controllers.RemoveFavorite(d.Favorites, d.Log)).Methods("DELETE")

	// Viewing and contact submissions; auth is optional and only pre-fills.
	viewings := controllers.ScheduleViewing(d.Catalog, d.Submitter, d.Log)
	router.Handle("/properties/{id}/viewings", middleware.OptionalAuth(viewings)).Methods("POST")
	router.HandleFunc("/contact", controllers.SubmitContact(d.Submitter, d.Log)).Methods("POST")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)
	authenticated.HandleFunc("/logout", controllers.Logout(d.Sessions, d.Log)).Methods("POST")
	authenticated.HandleFunc("/me", controllers.Me(d.Sessions)).Methods("GET")
}
