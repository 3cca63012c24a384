// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Service opens session carts against the catalog and the slot store
type Service struct {
	store       Store
	catalog     ProductLookup
	keyName     string
	shippingFee int64
	logger      logrus.FieldLogger
}

// NewService creates a new cart service
func NewService(store Store, lookup ProductLookup, keyName string, shippingFee int64, logger logrus.FieldLogger) *Service {
	return &Service{
		store:       store,
		catalog:     lookup,
		keyName:     keyName,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// Open rehydrates the cart stored for sessionID. A missing, unreadable or
// malformed slot yields an empty cart; Open never fails.
func (s *Service) Open(ctx context.Context, sessionID string) *Cart {
	key := s.SlotKey(sessionID)
	c := &Cart{
		key:         key,
		lines:       []Line{},
		catalog:     s.catalog,
		store:       s.store,
		shippingFee: s.shippingFee,
	}

	data, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			s.logger.WithError(err).WithField("slot", key).Warn("cart slot unreadable, starting empty")
		}
		return c
	}

	lines, err := UnmarshalLines(data)
	if err != nil {
		s.logger.WithError(err).WithField("slot", key).Debug("cart slot malformed, starting empty")
		return c
	}

	c.lines = lines
	return c
}

// SlotKey returns the storage key for a session's cart
func (s *Service) SlotKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.keyName, sessionID)
}
