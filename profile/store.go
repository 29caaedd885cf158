// Package profile persists the single designer profile blob. Unlike the
// collection stores this key holds one object; loading seeds the demo
// profile on first access so the account view always has something to
// show.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/designandcart-afk/designandcart/core"
)

// Key is the fixed storage key the profile lives under
const Key = "dc:designerProfile"

// Designer is the profile record behind the account page
type Designer struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Studio          string `json:"studio"`
	Experience      string `json:"experience"`
	Specialization  string `json:"specialization"`
	Address         string `json:"address"`
	GSTID           string `json:"gstId,omitempty"`
	CertificationID string `json:"certificationId,omitempty"`
	RERAID          string `json:"reraId,omitempty"`
	About           string `json:"about"`
	PortfolioURL    string `json:"portfolioUrl,omitempty"`
	ProfilePic      string `json:"profilePic,omitempty"`
}

// Store persists the designer profile
type Store struct {
	storage core.Storage
	logger  core.Logger
}

// StoreOptions configures a profile store. Storage is required.
type StoreOptions struct {
	Storage core.Storage
	Logger  core.Logger
}

// NewStore creates a profile store over the given storage backend
func NewStore(opts StoreOptions) *Store {
	s := &Store{
		storage: opts.Storage,
		logger:  opts.Logger,
	}
	if s.logger == nil {
		s.logger = &core.NoOpLogger{}
	}
	return s
}

// Load returns the persisted profile, seeding the demo profile when none
// exists yet
func (s *Store) Load(ctx context.Context) (Designer, error) {
	blob, err := s.storage.Get(ctx, Key)
	if err != nil {
		return Designer{}, &core.StoreError{Op: "profile.Load", Kind: "storage", Key: Key, Err: err}
	}
	if blob == "" {
		demo := DemoDesigner()
		if err := s.Save(ctx, demo); err != nil {
			return Designer{}, err
		}
		return demo, nil
	}

	var d Designer
	if err := json.Unmarshal([]byte(blob), &d); err != nil {
		return Designer{}, &core.StoreError{
			Op:   "profile.Load",
			Kind: "codec",
			Key:  Key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	return d, nil
}

// Save persists the profile, replacing any previous one
func (s *Store) Save(ctx context.Context, d Designer) error {
	data, err := json.Marshal(d)
	if err != nil {
		return &core.StoreError{Op: "profile.Save", Kind: "codec", Key: Key, Err: err}
	}
	if err := s.storage.Set(ctx, Key, string(data)); err != nil {
		return &core.StoreError{Op: "profile.Save", Kind: "storage", Key: Key, Err: err}
	}
	return nil
}

// DemoDesigner returns the seeded demo profile
func DemoDesigner() Designer {
	return Designer{
		Name:            "Demo Designer",
		Email:           "demo@designandcart.in",
		Phone:           "+91 98765 43210",
		Studio:          "De'Artisa Designs LLP",
		Experience:      "6 years",
		Specialization:  "Residential & Commercial Interiors",
		Address:         "HSR Layout, Bengaluru, Karnataka",
		GSTID:           "29ABCDE1234F2Z5",
		CertificationID: "INT-000923",
		RERAID:          "RERA-KA-12345",
		About:           "A passionate interior designer focused on modern, sustainable design. Helping clients visualize and implement spaces with real, purchasable products.",
		PortfolioURL:    "https://designandcart.in/portfolio/demo",
		ProfilePic:      "https://images.unsplash.com/photo-1607746882042-944635dfe10e?w=800&auto=format&fit=crop",
	}
}
