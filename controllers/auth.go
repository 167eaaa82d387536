package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/models"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
	"github.com/AbdullahAbukalaf/real-estate-reign/utils"
)

type ContextKey string

// IdentityKey carries the authenticated session placed by the auth
// middleware.
const IdentityKey = ContextKey("identity")

type Response struct {
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(sessions *store.Sessions, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials loginRequest
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("Error decoding login credentials: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		session, err := sessions.Login(r.Context(), credentials.Email, credentials.Password)
		if err != nil {
			if errors.Is(err, store.ErrMissingCredentials) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("Login failed for %s: %v", credentials.Email, err)
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		token, err := utils.GenerateJWT(session.Email, session.Name)
		if err != nil {
			log.Errorf("Error generating JWT token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Login successful", Token: token})
	}
}

// Logout clears the session; the redirect field points clients back to the
// landing view.
func Logout(sessions *store.Sessions, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Logout(r.Context()); err != nil {
			log.Errorf("Logout failed: %v", err)
			http.Error(w, "Logout failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Logged out", Redirect: "/"})
	}
}

// Me returns the current session identity. Clients use it to pre-fill forms.
func Me(sessions *store.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessions.Current()
		if session == nil {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Authenticated",
			Data:    session,
		})
	}
}
