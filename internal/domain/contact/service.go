// internal/domain/contact/service.go
package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/hooked-store/storefront/internal/pkg/inbox"
	"github.com/sirupsen/logrus"
)

// Status strings shown to the visitor
const (
	StatusIncomplete = "Please complete all fields."
	StatusSent       = "Thanks! We will reach out soon."
	StatusFailed     = "Something went wrong. Please try again."
)

var (
	// ErrValidation is returned when a required field is empty after trimming
	ErrValidation = errors.New("contact validation failed")
	// ErrDelivery is returned when the inbox endpoint could not be reached or rejected the inquiry
	ErrDelivery = errors.New("contact delivery failed")
)

// Inquiry is a visitor's message to the shop
type Inquiry struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Result is the outcome of one submission. Reset tells the form to clear itself.
type Result struct {
	Status string `json:"status"`
	Reset  bool   `json:"reset"`
	Err    error  `json:"-"`
}

// Sender delivers an inquiry to the external inbox
type Sender interface {
	Send(ctx context.Context, sub inbox.Submission) (inbox.Response, error)
}

// Service validates inquiries and relays them to the inbox
type Service struct {
	sender Sender
	logger logrus.FieldLogger
}

// NewService creates a new contact relay
func NewService(sender Sender, logger logrus.FieldLogger) *Service {
	return &Service{
		sender: sender,
		logger: logger,
	}
}

// Submit validates and forwards one inquiry. It has no effect on any cart.
func (s *Service) Submit(ctx context.Context, inq Inquiry) (Result, error) {
	name := strings.TrimSpace(inq.Name)
	email := strings.TrimSpace(inq.Email)
	message := strings.TrimSpace(inq.Message)

	if name == "" || email == "" || message == "" {
		return Result{Status: StatusIncomplete, Err: ErrValidation}, ErrValidation
	}

	if _, err := s.sender.Send(ctx, inbox.Submission{Name: name, Email: email, Message: message}); err != nil {
		s.logger.WithError(err).Error("contact relay failed")
		return Result{Status: StatusFailed, Err: ErrDelivery}, ErrDelivery
	}

	s.logger.WithField("email", email).Info("contact inquiry relayed")
	return Result{Status: StatusSent, Reset: true}, nil
}

// SubmitAsync runs Submit in its own goroutine and delivers the result on the
// returned channel, which receives exactly one value
func (s *Service) SubmitAsync(ctx context.Context, inq Inquiry) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		res, _ := s.Submit(ctx, inq)
		out <- res
	}()
	return out
}
