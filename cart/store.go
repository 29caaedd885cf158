// Package cart maintains the ordered sequence of cart lines for the
// current designer session, persisted as a single JSON blob. Every
// mutation rewrites the whole collection (write-through, no batching);
// the blob layout matches the original app's local-storage format so the
// field names are part of the persistence contract.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/designandcart-afk/designandcart/catalog"
	"github.com/designandcart-afk/designandcart/core"
)

// Key is the fixed storage key the cart collection lives under
const Key = "dc:cart"

// Line is one entry in the not-yet-purchased product selection. ProjectID
// and Area are free-text attribution tags linking the line to a design
// project and a room within it; they only matter for display grouping.
type Line struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
	ProjectID string `json:"projectId,omitempty"`
	Area      string `json:"area,omitempty"`
}

// Store persists the cart line sequence
type Store struct {
	storage   core.Storage
	ids       core.IDSource
	logger    core.Logger
	telemetry core.Telemetry
}

// StoreOptions configures a cart store. Storage is required; the rest
// default to no-op implementations.
type StoreOptions struct {
	Storage   core.Storage
	IDs       core.IDSource
	Logger    core.Logger
	Telemetry core.Telemetry
}

// NewStore creates a cart store over the given storage backend
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

// Load returns the persisted line sequence. An absent or empty blob reads
// as an empty sequence, never an error.
func (s *Store) Load(ctx context.Context) ([]Line, error) {
	blob, err := s.storage.Get(ctx, Key)
	if err != nil {
		return nil, &core.StoreError{Op: "cart.Load", Kind: "storage", Key: Key, Err: err}
	}
	if blob == "" {
		return []Line{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		return nil, &core.StoreError{
			Op:   "cart.Load",
			Kind: "codec",
			Key:  Key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

// SeedIfEmpty initializes the cart with the given lines when no cart has
// been persisted yet. Idempotent: an existing non-empty cart is left
// untouched, so it only fires on true absence (missing key or "[]").
func (s *Store) SeedIfEmpty(ctx context.Context, lines []Line) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding demo cart", map[string]interface{}{
		"operation": "cart_seed",
		"lines":     len(lines),
	})
	return s.persist(ctx, "cart.SeedIfEmpty", lines)
}

// Add appends a new line with a freshly minted ID. Repeated adds of the
// same product create separate lines; a designer may add one product to
// several project areas.
func (s *Store) Add(ctx context.Context, productID string, qty int, projectID, area string) (Line, error) {
	if qty < 1 {
		qty = 1
	}

	lines, err := s.Load(ctx)
	if err != nil {
		return Line{}, err
	}

	line := Line{
		ID:        s.ids.NewID("line_"),
		ProductID: productID,
		Qty:       qty,
		ProjectID: projectID,
		Area:      area,
	}
	lines = append(lines, line)

	if err := s.persist(ctx, "cart.Add", lines); err != nil {
		return Line{}, err
	}

	s.logger.Debug("Cart line added", map[string]interface{}{
		"operation":  "cart_add",
		"line_id":    line.ID,
		"product_id": productID,
		"qty":        qty,
	})
	return line, nil
}

// SetQty adjusts a line's quantity by delta, flooring at 1. Removal is an
// explicit Remove, never a decrement to zero. An unknown line ID is a
// silent no-op.
func (s *Store) SetQty(ctx context.Context, lineID string, delta int) error {
	lines, err := s.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range lines {
		if lines[i].ID != lineID {
			continue
		}
		next := lines[i].Qty + delta
		if next < 1 {
			next = 1
		}
		lines[i].Qty = next
		changed = true
		break
	}
	if !changed {
		return nil
	}

	return s.persist(ctx, "cart.SetQty", lines)
}

// Remove filters out the matching line. An unknown line ID is a silent
// no-op and the persisted blob is left untouched.
func (s *Store) Remove(ctx context.Context, lineID string) error {
	lines, err := s.Load(ctx)
	if err != nil {
		return err
	}

	next := lines[:0]
	found := false
	for _, l := range lines {
		if l.ID == lineID {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return nil
	}

	return s.persist(ctx, "cart.Remove", next)
}

// Clear empties the cart and persists immediately
func (s *Store) Clear(ctx context.Context) error {
	return s.persist(ctx, "cart.Clear", []Line{})
}

func (s *Store) persist(ctx context.Context, op string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "codec", Key: Key, Err: err}
	}
	if err := s.storage.Set(ctx, Key, string(data)); err != nil {
		s.logger.Error("Cart persist failed", map[string]interface{}{
			"operation": "cart_persist",
			"op":        op,
			"error":     err,
		})
		return &core.StoreError{Op: op, Kind: "storage", Key: Key, Err: err}
	}
	return nil
}

// Subtotal is the pure sum of resolved price times quantity across the
// lines. Lines whose product is missing from the catalog contribute zero;
// an unresolvable reference is lenient, not an error.
func Subtotal(lines []Line, c *catalog.Catalog) int64 {
	var sum int64
	for _, l := range lines {
		p, ok := c.ByID(l.ProductID)
		if !ok {
			continue
		}
		sum += p.Price * int64(l.Qty)
	}
	return sum
}
