// internal/domain/checkout/service.go
package checkout

import (
	"context"

	"github.com/hooked-store/storefront/internal/config"
	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/pkg/money"
	"github.com/sirupsen/logrus"
)

// Cart is the part of the cart aggregate checkout needs
type Cart interface {
	Lines() []cart.Line
	ShippingFee() int64
	Clear(ctx context.Context) error
}

// Service composes orders and hands them off to the messaging contact
type Service struct {
	shopName      string
	paymentMethod string
	host          string
	recipient     string
	formatter     *money.Formatter
	logger        logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, logger logrus.FieldLogger) *Service {
	return &Service{
		shopName:      cfg.Shop.Name,
		paymentMethod: cfg.Shop.PaymentMethod,
		host:          cfg.Shop.MessagingHost,
		recipient:     cfg.Shop.OrderRecipient,
		formatter:     money.NewFormatter(cfg.Shop.CurrencySymbol),
		logger:        logger,
	}
}

// Submit validates the customer fields, composes the order summary from a
// snapshot of the cart and builds the hand-off link. On success the cart is
// cleared. A validation failure leaves the cart untouched.
func (s *Service) Submit(ctx context.Context, c Cart, req Request) (*HandOff, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.Normalized()

	lines := c.Lines()
	totals := cart.CalculateTotals(lines, c.ShippingFee())
	message := ComposeMessage(s.shopName, s.paymentMethod, req, lines, totals, s.formatter)

	handOff := &HandOff{
		URL:     HandOffURL(s.host, s.recipient, message),
		Message: message,
		Lines:   lines,
		Totals:  totals,
		Status:  StatusRedirecting,
	}

	if err := c.Clear(ctx); err != nil {
		// the cart is already empty in memory, only the slot write failed
		s.logger.WithError(err).Warn("failed to persist cleared cart after checkout")
	}

	s.logger.WithFields(logrus.Fields{
		"lines":       len(lines),
		"grand_total": totals.GrandTotal,
	}).Info("checkout handed off")

	return handOff, nil
}
