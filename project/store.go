// Package project manages the designer's projects, the project-to-product
// links created by "Add to Design", and upload records attached to a
// project. Projects and links live under separate storage keys with the
// same full-collection write-through contract as the cart.
package project

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/designandcart-afk/designandcart/core"
)

// Storage keys for the two collections this package owns
const (
	Key      = "dc:projects"
	LinksKey = "dc:projectProducts"
)

// Upload is one file record attached to a project. URL points at wherever
// the upload adapter put the file.
type Upload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Mime string `json:"mime"`
	URL  string `json:"url"`
}

// Project is one design engagement
type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Scope     string   `json:"scope"`
	Address   string   `json:"address,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Area      string   `json:"area,omitempty"`
	Status    string   `json:"status,omitempty"`
	Uploads   []Upload `json:"uploads,omitempty"`
	CreatedAt int64    `json:"createdAt"`
}

// Link relates a product to a project and an area within it
type Link struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	ProductID string `json:"productId"`
	Area      string `json:"area"`
}

// Store persists projects and project-product links
type Store struct {
	storage core.Storage
	ids     core.IDSource
	logger  core.Logger
}

// StoreOptions configures a project store. Storage is required.
type StoreOptions struct {
	Storage core.Storage
	IDs     core.IDSource
	Logger  core.Logger
}

// NewStore creates a project store over the given storage backend
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

// Load returns the persisted projects
func (s *Store) Load(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := s.load(ctx, "project.Load", Key, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

// SeedIfEmpty initializes the project list when none has been persisted
func (s *Store) SeedIfEmpty(ctx context.Context, projects []Project) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding demo projects", map[string]interface{}{
		"operation": "project_seed",
		"projects":  len(projects),
	})
	return s.persist(ctx, "project.SeedIfEmpty", Key, projects)
}

// Create appends a new project with a fresh ID and creation timestamp
func (s *Store) Create(ctx context.Context, name, scope, address, area string) (Project, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return Project{}, err
	}

	p := Project{
		ID:        s.ids.NewID("proj_"),
		Name:      name,
		Scope:     scope,
		Address:   address,
		Area:      area,
		Status:    "wip",
		CreatedAt: s.ids.Now().UnixMilli(),
	}
	projects = append(projects, p)

	if err := s.persist(ctx, "project.Create", Key, projects); err != nil {
		return Project{}, err
	}
	return p, nil
}

// ByID resolves one project. ok is false when absent.
func (s *Store) ByID(ctx context.Context, projectID string) (Project, bool, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return Project{}, false, err
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p, true, nil
		}
	}
	return Project{}, false, nil
}

// AttachUpload records an upload against a project. An unknown project ID
// is a silent no-op.
func (s *Store) AttachUpload(ctx context.Context, projectID string, u Upload) error {
	projects, err := s.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		projects[i].Uploads = append(projects[i].Uploads, u)
		changed = true
		break
	}
	if !changed {
		return nil
	}

	return s.persist(ctx, "project.AttachUpload", Key, projects)
}

// Links returns all persisted project-product links
func (s *Store) Links(ctx context.Context) ([]Link, error) {
	var links []Link
	if err := s.load(ctx, "project.Links", LinksKey, &links); err != nil {
		return nil, err
	}
	if links == nil {
		links = []Link{}
	}
	return links, nil
}

// SeedLinksIfEmpty initializes the link list when none has been persisted
func (s *Store) SeedLinksIfEmpty(ctx context.Context, links []Link) error {
	existing, err := s.Links(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return s.persist(ctx, "project.SeedLinksIfEmpty", LinksKey, links)
}

// LinkProduct records a product against a project and area ("Add to
// Design"). Duplicate links are allowed, matching repeated adds.
func (s *Store) LinkProduct(ctx context.Context, projectID, productID, area string) (Link, error) {
	links, err := s.Links(ctx)
	if err != nil {
		return Link{}, err
	}

	l := Link{
		ID:        s.ids.NewID("pp_"),
		ProjectID: projectID,
		ProductID: productID,
		Area:      area,
	}
	links = append(links, l)

	if err := s.persist(ctx, "project.LinkProduct", LinksKey, links); err != nil {
		return Link{}, err
	}
	return l, nil
}

// LinksFor returns the links attached to one project, in insertion order
func (s *Store) LinksFor(ctx context.Context, projectID string) ([]Link, error) {
	links, err := s.Links(ctx)
	if err != nil {
		return nil, err
	}
	var out []Link
	for _, l := range links {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) load(ctx context.Context, op, key string, dst interface{}) error {
	blob, err := s.storage.Get(ctx, key)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "storage", Key: key, Err: err}
	}
	if blob == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(blob), dst); err != nil {
		return &core.StoreError{
			Op:   op,
			Kind: "codec",
			Key:  key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	return nil
}

func (s *Store) persist(ctx context.Context, op, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "codec", Key: key, Err: err}
	}
	if err := s.storage.Set(ctx, key, string(data)); err != nil {
		return &core.StoreError{Op: op, Kind: "storage", Key: key, Err: err}
	}
	return nil
}
