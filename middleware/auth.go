package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/AbdullahAbukalaf/real-estate-reign/controllers"
	"github.com/AbdullahAbukalaf/real-estate-reign/models"
	"github.com/AbdullahAbukalaf/real-estate-reign/utils"
)

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the token's identity to the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := identityFromHeader(r)
		if !ok {
			log.Printf("Missing or invalid Authorization header from request %s %s", r.Method, r.URL)
			http.Error(w, "Missing or invalid Authorization header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), controllers.IdentityKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the identity when a valid bearer token is present
// and passes the request through either way. Used where authentication only
// pre-fills data.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := identityFromHeader(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), controllers.IdentityKey, session))
		}
		next.ServeHTTP(w, r)
	})
}

func identityFromHeader(r *http.Request) (*models.Session, bool) {
	tokenHeader := r.Header.Get("Authorization")
	if tokenHeader == "" {
		return nil, false
	}

	tokenParts := strings.Split(tokenHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateJWT(tokenParts[1])
	if err != nil {
		return nil, false
	}

	return &models.Session{Email: claims.Email, Name: claims.Name}, true
}
