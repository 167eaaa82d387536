package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/notify"
)

// Result is the acceptance receipt for a submitted request.
type Result struct {
	ConfirmationID string `json:"confirmationId"`
}

// Submitter accepts validated requests. There are no retry semantics: a
// request either fails validation locally or is accepted.
type Submitter interface {
	SubmitViewing(ctx context.Context, v *Viewing) (*Result, error)
	SubmitContact(ctx context.Context, m *ContactMessage) (*Result, error)
}

// SimulatedSubmitter stands in for a booking backend. It accepts everything
// that validates, after a fixed delay. A canceled context makes the pending
// acceptance a no-op rather than an error worth acting on.
type SimulatedSubmitter struct {
	delay    time.Duration
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewSimulatedSubmitter(delay time.Duration, notifier notify.Notifier, log *logrus.Logger) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay, notifier: notifier, log: log}
}

func (s *SimulatedSubmitter) SubmitViewing(ctx context.Context, v *Viewing) (*Result, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.log.Infof("Viewing scheduled for property %d on %s at %s", v.PropertyID, v.Date.Format("2006-01-02"), v.Time)
	s.notifier.Success("Viewing scheduled successfully! We'll contact you to confirm.")
	return &Result{ConfirmationID: uuid.NewString()}, nil
}

func (s *SimulatedSubmitter) SubmitContact(ctx context.Context, m *ContactMessage) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.log.Infof("Contact message received from %s", m.Email)
	s.notifier.Success("Message sent successfully! We'll be in touch soon.")
	return &Result{ConfirmationID: uuid.NewString()}, nil
}

func (s *SimulatedSubmitter) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
