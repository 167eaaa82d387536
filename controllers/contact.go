package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/booking"
	"github.com/AbdullahAbukalaf/real-estate-reign/models"
)

func SubmitContact(submitter booking.Submitter, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message booking.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			log.Errorf("Invalid contact payload: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		if err := message.Validate(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.APIResponse{
				Success: false,
				Message: "Please fill all required fields",
				Data:    map[string]string{"error": err.Error()},
			})
			return
		}

		result, err := submitter.SubmitContact(r.Context(), &message)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			log.Errorf("Contact submission failed: %v", err)
			http.Error(w, "Failed to send message", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Message sent successfully! We'll be in touch soon.",
			Data:    result,
		})
	}
}
