// Package render persists the visualization images a designer shares per
// project area, together with the client review verdict on each one. A
// render moves between pending, approved and changes-requested freely;
// the review can be reopened at any time.
package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/designandcart-afk/designandcart/core"
)

// Key is the fixed storage key the render collection lives under
const Key = "dc:renders"

// Review status values. Unlike order status this is a closed set; the
// review buttons only ever produce these three.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusChanges  = "changes"
)

// Render is one shared visualization image. ProjectID and Area attribute
// it to a project room the same way cart lines are attributed.
type Render struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	Status    string `json:"status,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Area      string `json:"area,omitempty"`
}

// Store persists the render collection
type Store struct {
	storage core.Storage
	ids     core.IDSource
	logger  core.Logger
}

// StoreOptions configures a render store. Storage is required.
type StoreOptions struct {
	Storage core.Storage
	IDs     core.IDSource
	Logger  core.Logger
}

// NewStore creates a render store over the given storage backend
func NewStore(opts StoreOptions) *Store {
	s := &Store{
		storage: opts.Storage,
		ids:     opts.IDs,
		logger:  opts.Logger,
	}
	if s.ids == nil {
		s.ids = core.UUIDSource{}
	}
	if s.logger == nil {
		s.logger = &core.NoOpLogger{}
	}
	return s
}

// Load returns the persisted renders. A render stored without a status
// reads as pending; the field is optional in the persisted blob.
func (s *Store) Load(ctx context.Context) ([]Render, error) {
	blob, err := s.storage.Get(ctx, Key)
	if err != nil {
		return nil, &core.StoreError{Op: "render.Load", Kind: "storage", Key: Key, Err: err}
	}
	if blob == "" {
		return []Render{}, nil
	}

	var renders []Render
	if err := json.Unmarshal([]byte(blob), &renders); err != nil {
		return nil, &core.StoreError{
			Op:   "render.Load",
			Kind: "codec",
			Key:  Key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	for i := range renders {
		if renders[i].Status == "" {
			renders[i].Status = StatusPending
		}
	}
	if renders == nil {
		renders = []Render{}
	}
	return renders, nil
}

// SeedIfEmpty initializes the render list when none has been persisted
// yet. Same idempotent-seed policy as the other stores.
func (s *Store) SeedIfEmpty(ctx context.Context, renders []Render) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding demo renders", map[string]interface{}{
		"operation": "render_seed",
		"renders":   len(renders),
	})
	return s.persist(ctx, "render.SeedIfEmpty", renders)
}

// Share appends a new pending render for a project area
func (s *Store) Share(ctx context.Context, projectID, area, imageURL string) (Render, error) {
	renders, err := s.Load(ctx)
	if err != nil {
		return Render{}, err
	}

	r := Render{
		ID:        s.ids.NewID("ren_"),
		ImageURL:  imageURL,
		Status:    StatusPending,
		ProjectID: projectID,
		Area:      area,
	}
	renders = append(renders, r)

	if err := s.persist(ctx, "render.Share", renders); err != nil {
		return Render{}, err
	}
	return r, nil
}

// SetStatus moves a render to the given review status. The status must be
// one of the three known values; an unknown render ID is a silent no-op.
// No transition rules apply between the known statuses, an approved
// render can be reopened with a change request and vice versa.
func (s *Store) SetStatus(ctx context.Context, renderID, status string) error {
	switch status {
	case StatusPending, StatusApproved, StatusChanges:
	default:
		return &core.StoreError{
			Op:      "render.SetStatus",
			Kind:    "validate",
			Key:     Key,
			Message: fmt.Sprintf("unknown render status %q", status),
		}
	}

	renders, err := s.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range renders {
		if renders[i].ID != renderID {
			continue
		}
		renders[i].Status = status
		changed = true
		break
	}
	if !changed {
		return nil
	}

	s.logger.Info("Render status updated", map[string]interface{}{
		"operation": "render_status",
		"render_id": renderID,
		"status":    status,
	})
	return s.persist(ctx, "render.SetStatus", renders)
}

// Approve marks a render as accepted by the client
func (s *Store) Approve(ctx context.Context, renderID string) error {
	return s.SetStatus(ctx, renderID, StatusApproved)
}

// RequestChanges marks a render as needing rework
func (s *Store) RequestChanges(ctx context.Context, renderID string) error {
	return s.SetStatus(ctx, renderID, StatusChanges)
}

// ForProject returns one project's renders in insertion order
func (s *Store) ForProject(ctx context.Context, projectID string) ([]Render, error) {
	renders, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Render
	for _, r := range renders {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ForArea narrows a project's renders to one room
func (s *Store) ForArea(ctx context.Context, projectID, area string) ([]Render, error) {
	renders, err := s.ForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var out []Render
	for _, r := range renders {
		if r.Area == area {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) persist(ctx context.Context, op string, renders []Render) error {
	data, err := json.Marshal(renders)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "codec", Key: Key, Err: err}
	}
	if err := s.storage.Set(ctx, Key, string(data)); err != nil {
		return &core.StoreError{Op: op, Kind: "storage", Key: Key, Err: err}
	}
	return nil
}
