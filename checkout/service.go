// Package checkout orchestrates the cart and order stores through the one
// meaningful transition of the system: converting the current cart into a
// placed order and emptying the cart.
package checkout

import (
	"context"

	"github.com/designandcart-afk/designandcart/cart"
	"github.com/designandcart-afk/designandcart/catalog"
	"github.com/designandcart-afk/designandcart/core"
	"github.com/designandcart-afk/designandcart/order"
)

// Service composes the cart store, order store and catalog
type Service struct {
	cart      *cart.Store
	orders    *order.Store
	catalog   *catalog.Catalog
	logger    core.Logger
	telemetry core.Telemetry
}

// ServiceOptions configures a checkout service. Cart, Orders and Catalog
// are required; Logger and Telemetry default to no-ops.
type ServiceOptions struct {
	Cart      *cart.Store
	Orders    *order.Store
	Catalog   *catalog.Catalog
	Logger    core.Logger
	Telemetry core.Telemetry
}

// NewService creates a checkout service
func NewService(opts ServiceOptions) *Service {
	s := &Service{
		cart:      opts.Cart,
		orders:    opts.Orders,
		catalog:   opts.Catalog,
		logger:    opts.Logger,
		telemetry: opts.Telemetry,
	}
	if s.logger == nil {
		s.logger = &core.NoOpLogger{}
	}
	if s.telemetry == nil {
		s.telemetry = &core.NoOpTelemetry{}
	}
	return s
}

// Checkout reads the current cart, places an order from it and clears the
// cart. An empty cart is a benign no-op returning (nil, nil).
//
// Placing the order and clearing the cart are two independent persists
// with no transaction around them: if the process dies between the two,
// the order is recorded but the cart still holds its lines, and a retry
// will submit a duplicate order. That window is inherent to the
// keyed-blob storage contract and is covered by tests rather than hidden.
func (s *Service) Checkout(ctx context.Context) (*order.Order, error) {
	ctx, span := s.telemetry.StartSpan(ctx, "checkout")
	defer span.End()

	lines, err := s.cart.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(lines) == 0 {
		s.logger.Debug("Checkout skipped on empty cart", map[string]interface{}{
			"operation": "checkout",
			"result":    "noop",
		})
		return nil, nil
	}

	span.SetAttribute("cart.lines", len(lines))

	placed, err := s.orders.Place(ctx, lines, s.catalog)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already persisted; surface the failure so the
		// caller knows the cart may resubmit on retry.
		span.RecordError(err)
		s.logger.Error("Cart clear failed after order placement", map[string]interface{}{
			"operation": "checkout",
			"order_id":  placed.ID,
			"error":     err,
		})
		return placed, err
	}

	span.SetAttribute("order.id", placed.ID)
	s.telemetry.RecordMetric("checkout.total", float64(placed.Total), map[string]string{
		"status": placed.Status,
	})
	s.logger.Info("Checkout complete", map[string]interface{}{
		"operation": "checkout",
		"order_id":  placed.ID,
		"total":     placed.Total,
		"items":     len(placed.Items),
	})
	return placed, nil
}

// Subtotal computes the current cart subtotal without mutating anything
func (s *Service) Subtotal(ctx context.Context) (int64, error) {
	lines, err := s.cart.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Subtotal(lines, s.catalog), nil
}
