// Package order records checkout events and exposes their history.
// Orders are immutable snapshots of the cart at checkout time, except for
// the status field which fulfillment may rewrite later. The history is
// newest-first and nothing in this package ever deletes an order.
package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/designandcart-afk/designandcart/cart"
	"github.com/designandcart-afk/designandcart/catalog"
	"github.com/designandcart-afk/designandcart/core"
)

// Key is the fixed storage key the order history lives under
const Key = "dc:orders"

// Well-known status values. Status is deliberately free-text: the original
// app lets fulfillment write any string in any sequence, and this port
// keeps that permissive contract rather than imposing a transition table.
const (
	StatusPlaced    = "Placed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// Order is a snapshot of a checkout event. Items are copied by value from
// the cart; later cart mutations never reach back into a placed order.
// Total is captured at creation from live catalog prices. Line-item unit
// prices are not stored, so re-displaying an old order resolves prices
// against the current catalog (faithful to the original app; a catalog
// price change after checkout makes the redisplayed math disagree with
// the stored total).
type Order struct {
	ID     string      `json:"id"`
	Items  []cart.Line `json:"items"`
	Total  int64       `json:"total"`
	Status string      `json:"status"`
	TS     int64       `json:"ts"`
}

// Store persists the order history
type Store struct {
	storage   core.Storage
	ids       core.IDSource
	logger    core.Logger
	telemetry core.Telemetry
}

// StoreOptions configures an order store. Storage is required; the rest
// default to no-op implementations.
type StoreOptions struct {
	Storage   core.Storage
	IDs       core.IDSource
	Logger    core.Logger
	Telemetry core.Telemetry
}

// NewStore creates an order store over the given storage backend
func NewStore(opts StoreOptions) *Store {
	s := &Store{
		storage:   opts.Storage,
		ids:       opts.IDs,
		logger:    opts.Logger,
		telemetry: opts.Telemetry,
	}
	if s.ids == nil {
		s.ids = core.UUIDSource{}
	}
	if s.logger == nil {
		s.logger = &core.NoOpLogger{}
	}
	if s.telemetry == nil {
		s.telemetry = &core.NoOpTelemetry{}
	}
	return s
}

// Load returns the persisted order history, newest first. An absent or
// empty blob reads as an empty sequence.
func (s *Store) Load(ctx context.Context) ([]Order, error) {
	blob, err := s.storage.Get(ctx, Key)
	if err != nil {
		return nil, &core.StoreError{Op: "order.Load", Kind: "storage", Key: Key, Err: err}
	}
	if blob == "" {
		return []Order{}, nil
	}

	var orders []Order
	if err := json.Unmarshal([]byte(blob), &orders); err != nil {
		return nil, &core.StoreError{
			Op:   "order.Load",
			Kind: "codec",
			Key:  Key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// SeedIfEmpty initializes the history with the given orders when none
// have been persisted yet. Same idempotent-seed policy as the cart store.
func (s *Store) SeedIfEmpty(ctx context.Context, orders []Order) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding demo orders", map[string]interface{}{
		"operation": "order_seed",
		"orders":    len(orders),
	})
	return s.persist(ctx, "order.SeedIfEmpty", orders)
}

// Place constructs a new order from the given cart lines and prepends it
// to the history. The lines are snapshotted by value and the total is
// computed from live catalog prices. Placing an empty sequence is a
// benign no-op returning (nil, nil) - not an error.
func (s *Store) Place(ctx context.Context, lines []cart.Line, c *catalog.Catalog) (*Order, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	orders, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Line, len(lines))
	copy(items, lines)

	o := Order{
		ID:     s.ids.NewID("ord_"),
		Items:  items,
		Total:  cart.Subtotal(items, c),
		Status: StatusPlaced,
		TS:     s.ids.Now().UnixMilli(),
	}

	// Newest-first ordering
	orders = append([]Order{o}, orders...)

	if err := s.persist(ctx, "order.Place", orders); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed", map[string]interface{}{
		"operation": "order_place",
		"order_id":  o.ID,
		"items":     len(o.Items),
		"total":     o.Total,
	})
	return &o, nil
}

// UpdateStatus replaces the status of the matching order. The new status
// is not validated and no transition rules apply - "Delivered" back to
// "Placed" is accepted. An unknown order ID is a silent no-op.
func (s *Store) UpdateStatus(ctx context.Context, orderID, status string) error {
	orders, err := s.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		orders[i].Status = status
		changed = true
		break
	}
	if !changed {
		return nil
	}

	s.logger.Info("Order status updated", map[string]interface{}{
		"operation": "order_status",
		"order_id":  orderID,
		"status":    status,
	})
	return s.persist(ctx, "order.UpdateStatus", orders)
}

// ByID resolves one order from the history. ok is false when absent.
func (s *Store) ByID(ctx context.Context, orderID string) (Order, bool, error) {
	orders, err := s.Load(ctx)
	if err != nil {
		return Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, true, nil
		}
	}
	return Order{}, false, nil
}

func (s *Store) persist(ctx context.Context, op string, orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "codec", Key: Key, Err: err}
	}
	if err := s.storage.Set(ctx, Key, string(data)); err != nil {
		s.logger.Error("Order persist failed", map[string]interface{}{
			"operation": "order_persist",
			"op":        op,
			"error":     err,
		})
		return &core.StoreError{Op: op, Kind: "storage", Key: Key, Err: err}
	}
	return nil
}
