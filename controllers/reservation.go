package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/booking"
	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/models"
)

type viewingResponse struct {
	models.APIResponse
	Redirect string `json:"redirect,omitempty"`
}

// ScheduleViewing validates and submits a viewing request for a property.
// If the caller is authenticated and left name or email blank, the session
// identity fills them in before validation.
func ScheduleViewing(cat *catalog.Catalog, submitter booking.Submitter, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
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

		var viewing booking.Viewing
		if err := json.NewDecoder(r.Body).Decode(&viewing); err != nil {
			log.Errorf("Invalid viewing payload: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		viewing.PropertyID = property.ID

		if session, ok := r.Context().Value(IdentityKey).(*models.Session); ok && session != nil {
			if viewing.Email == "" {
				viewing.Email = session.Email
			}
			if viewing.Name == "" && session.Name != "" {
				viewing.Name = session.Name
			}
		}

		if err := viewing.Validate(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.APIResponse{
				Success: false,
				Message: "Please fill all required fields",
				Data:    map[string]string{"error": err.Error()},
			})
			return
		}

		// The date window is enforced by the date picker, not here. Log when
		// a request slips past it so the gap stays visible.
		if !viewing.DateWithinWindow(time.Now()) {
			log.Warnf("Viewing for property %d requested outside the booking window: %s", property.ID, viewing.Date.Format("2006-01-02"))
		}

		result, err := submitter.SubmitViewing(r.Context(), &viewing)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				// Caller went away mid-delay; nothing to report to anyone.
				return
			}
			log.Errorf("Viewing submission failed: %v", err)
			http.Error(w, "Failed to schedule viewing", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(viewingResponse{
			APIResponse: models.APIResponse{
				Success: true,
				Message: "Viewing scheduled successfully! We'll contact you to confirm.",
				Data:    result,
			},
			Redirect: fmt.Sprintf("/properties/%d", property.ID),
		})
	}
}
