// Package services contains the case record engine.
// Services are called by handlers and persist through the slot store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/store"
	"go.uber.org/zap"
)

var (
	ErrCaseNotFound = errors.New("case not found")
	ErrDuplicateID  = errors.New("case id already exists")
)

// LoadState reports what the repository found in the snapshot slot
type LoadState int

const (
	LoadedSnapshot LoadState = iota
	LoadedMissing
	LoadedCorrupt
	LoadedUnavailable
)

func (s LoadState) String() string {
	switch s {
	case LoadedSnapshot:
		return "snapshot"
	case LoadedMissing:
		return "missing"
	case LoadedCorrupt:
		return "corrupt"
	case LoadedUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Snapshot is an immutable view of the case collection at one instant.
// Accessors hand out copies.
type Snapshot struct {
	cases []models.Case
}

// Len returns the number of cases
func (s Snapshot) Len() int { return len(s.cases) }

// Cases returns a deep copy of the collection in stored order
func (s Snapshot) Cases() []models.Case {
	out := make([]models.Case, len(s.cases))
	for i, c := range s.cases {
		out[i] = c.Clone()
	}
	return out
}

// Get returns the case with the given id
func (s Snapshot) Get(id string) (models.Case, bool) {
	for _, c := range s.cases {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Case{}, false
}

// CaseRepository owns the canonical case collection and mirrors every
// mutation to the snapshot slot before it becomes visible.
type CaseRepository struct {
	mu     sync.RWMutex
	cases  []models.Case
	store  store.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewCaseRepository creates an empty repository; call Load to read the slot
func NewCaseRepository(st store.Store, logger *zap.SugaredLogger) *CaseRepository {
	return &CaseRepository{
		cases:  []models.Case{},
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// Load replaces the in-memory collection with the stored snapshot.
// A missing, undecodable or unreadable slot leaves the repository empty.
func (r *CaseRepository) Load(ctx context.Context) LoadState {
	data, err := r.store.Get(ctx, store.SlotCases)
	if errors.Is(err, store.ErrNotFound) {
		r.swap([]models.Case{})
		return LoadedMissing
	}
	if err != nil {
		r.logger.Errorw("Failed to read case snapshot", "slot", store.SlotCases, "error", err)
		r.swap([]models.Case{})
		return LoadedUnavailable
	}

	var cases []models.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		r.logger.Errorw("Failed to parse case snapshot, starting empty", "slot", store.SlotCases, "error", err)
		r.swap([]models.Case{})
		return LoadedCorrupt
	}
	if cases == nil {
		cases = []models.Case{}
	}
	for i := range cases {
		normalize(&cases[i])
	}

	r.swap(cases)
	return LoadedSnapshot
}

// Snapshot returns the current collection
func (r *CaseRepository) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{cases: r.cases}
}

// List returns a copy of every case in stored order
func (r *CaseRepository) List() []models.Case {
	return r.Snapshot().Cases()
}

// Get returns the case with the given id or ErrCaseNotFound
func (r *CaseRepository) Get(id string) (models.Case, error) {
	c, ok := r.Snapshot().Get(id)
	if !ok {
		return models.Case{}, fmt.Errorf("get %s: %w", id, ErrCaseNotFound)
	}
	return c, nil
}

// Create stores a new case at the front of the collection. Status is forced
// to Open, hearings are cleared and createdAt is stamped; an id is assigned
// when the caller left it blank.
func (r *CaseRepository) Create(ctx context.Context, c models.Case) (Snapshot, error) {
	c = c.Clone()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Status = models.StatusOpen
	c.Hearings = []models.Hearing{}
	c.CreatedAt = models.NewTimestamp(r.now())
	normalize(&c)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cases {
		if existing.ID == c.ID {
			return Snapshot{}, fmt.Errorf("create %s: %w", c.ID, ErrDuplicateID)
		}
	}

	next := make([]models.Case, 0, len(r.cases)+1)
	next = append(next, c)
	next = append(next, r.cases...)

	if err := r.persist(ctx, next); err != nil {
		return Snapshot{}, err
	}
	r.cases = next
	return Snapshot{cases: next}, nil
}

// Update substitutes the stored case with the same id. The whole record is
// replaced; id and createdAt of the stored case are kept.
func (r *CaseRepository) Update(ctx context.Context, c models.Case) (Snapshot, error) {
	c = c.Clone()
	normalize(&c)

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(c.ID)
	if idx < 0 {
		return Snapshot{}, fmt.Errorf("update %s: %w", c.ID, ErrCaseNotFound)
	}
	next, err := r.replaceAt(ctx, idx, c)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{cases: next}, nil
}

// Mutate applies fn to a copy of the stored case and persists the result,
// holding the write lock throughout so concurrent edits of one case are
// applied in turn. An error from fn leaves the store untouched.
func (r *CaseRepository) Mutate(ctx context.Context, id string, fn func(*models.Case) error) (models.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Case{}, fmt.Errorf("mutate %s: %w", id, ErrCaseNotFound)
	}
	c := r.cases[idx].Clone()
	if err := fn(&c); err != nil {
		return models.Case{}, err
	}
	c.ID = id

	next, err := r.replaceAt(ctx, idx, c)
	if err != nil {
		return models.Case{}, err
	}
	return next[idx].Clone(), nil
}

func (r *CaseRepository) indexOf(id string) int {
	for i, existing := range r.cases {
		if existing.ID == id {
			return i
		}
	}
	return -1
}

// replaceAt must be called with r.mu held
func (r *CaseRepository) replaceAt(ctx context.Context, idx int, c models.Case) ([]models.Case, error) {
	c.CreatedAt = r.cases[idx].CreatedAt

	next := make([]models.Case, len(r.cases))
	copy(next, r.cases)
	next[idx] = c

	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}
	r.cases = next
	return next, nil
}

// Seed stores cases as-is, used for the demo data on a fresh store
func (r *CaseRepository) Seed(ctx context.Context, cases []models.Case) error {
	next := make([]models.Case, len(cases))
	for i, c := range cases {
		next[i] = c.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.persist(ctx, next); err != nil {
		return err
	}
	r.cases = next
	return nil
}

func (r *CaseRepository) persist(ctx context.Context, cases []models.Case) error {
	data, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("encode case snapshot: %w", err)
	}
	if err := r.store.Put(ctx, store.SlotCases, data); err != nil {
		return fmt.Errorf("write case snapshot: %w", err)
	}
	return nil
}

func (r *CaseRepository) swap(cases []models.Case) {
	r.mu.Lock()
	r.cases = cases
	r.mu.Unlock()
}

// normalize turns nil slices into empty ones so snapshots never persist null
func normalize(c *models.Case) {
	if c.ApplicantPhones == nil {
		c.ApplicantPhones = []string{}
	}
	if c.ManagementPhones == nil {
		c.ManagementPhones = []string{}
	}
	if c.Hearings == nil {
		c.Hearings = []models.Hearing{}
	}
}
