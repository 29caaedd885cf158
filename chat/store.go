// Package chat persists the per-project message threads between the
// designer and their agent. All projects share one storage key; threads
// are views filtered by project ID and sorted by timestamp.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/designandcart-afk/designandcart/core"
	"github.com/designandcart-afk/designandcart/project"
)

// Key is the fixed storage key the message collection lives under
const Key = "dc:chat"

// Sender values
const (
	SenderDesigner = "designer"
	SenderAgent    = "agent"
)

// AgentName is how the agent introduces itself in the seeded welcome
const AgentName = "Agent"

// Message is one chat entry in a project thread
type Message struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	TS        int64  `json:"ts"`
}

// Store persists the chat messages
type Store struct {
	storage core.Storage
	ids     core.IDSource
	logger  core.Logger
}

// StoreOptions configures a chat store. Storage is required.
type StoreOptions struct {
	Storage core.Storage
	IDs     core.IDSource
	Logger  core.Logger
}

// NewStore creates a chat store over the given storage backend
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

// Load returns every persisted message across all projects
func (s *Store) Load(ctx context.Context) ([]Message, error) {
	blob, err := s.storage.Get(ctx, Key)
	if err != nil {
		return nil, &core.StoreError{Op: "chat.Load", Kind: "storage", Key: Key, Err: err}
	}
	if blob == "" {
		return []Message{}, nil
	}

	var messages []Message
	if err := json.Unmarshal([]byte(blob), &messages); err != nil {
		return nil, &core.StoreError{
			Op:   "chat.Load",
			Kind: "codec",
			Key:  Key,
			Err:  fmt.Errorf("%v: %w", err, core.ErrCorruptRecord),
		}
	}
	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}

// SeedWelcome seeds one agent welcome message per project when no chat
// has been persisted yet. Idempotent like the other store seeds.
func (s *Store) SeedWelcome(ctx context.Context, projects []project.Project) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := s.ids.Now().UnixMilli()
	seed := make([]Message, 0, len(projects))
	for _, p := range projects {
		seed = append(seed, Message{
			ID:        "m_" + p.ID + "_welcome",
			ProjectID: p.ID,
			Sender:    SenderAgent,
			Text:      fmt.Sprintf("Hello! I'm your %s. Share requirements or files here - I'll guide you end-to-end.", AgentName),
			TS:        now,
		})
	}

	s.logger.Info("Seeding chat welcome messages", map[string]interface{}{
		"operation": "chat_seed",
		"messages":  len(seed),
	})
	return s.persist(ctx, "chat.SeedWelcome", seed)
}

// Thread returns one project's messages sorted by timestamp ascending
func (s *Store) Thread(ctx context.Context, projectID string) ([]Message, error) {
	messages, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	var thread []Message
	for _, m := range messages {
		if m.ProjectID == projectID {
			thread = append(thread, m)
		}
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].TS < thread[j].TS
	})
	return thread, nil
}

// Send appends a message to a project thread. Empty text is a silent
// no-op, matching the original composer's guard.
func (s *Store) Send(ctx context.Context, projectID, sender, text string) (Message, error) {
	if text == "" {
		return Message{}, nil
	}

	messages, err := s.Load(ctx)
	if err != nil {
		return Message{}, err
	}

	m := Message{
		ID:        s.ids.NewID("m_"),
		ProjectID: projectID,
		Sender:    sender,
		Text:      text,
		TS:        s.ids.Now().UnixMilli(),
	}
	messages = append(messages, m)

	if err := s.persist(ctx, "chat.Send", messages); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (s *Store) persist(ctx context.Context, op string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return &core.StoreError{Op: op, Kind: "codec", Key: Key, Err: err}
	}
	if err := s.storage.Set(ctx, Key, string(data)); err != nil {
		return &core.StoreError{Op: op, Kind: "storage", Key: Key, Err: err}
	}
	return nil
}
