package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/store"
	"go.uber.org/zap"
)

var ErrUnknownVocabulary = errors.New("unknown vocabulary")

// Intake vocabularies offered by the registration form
var (
	DefaultSections = []string{
		"Minimum Wages",
		"Payment of Wages",
		"Shops & Establishments",
		"Maternity Benefit",
		"Contract Labour",
		"Industrial Relations",
	}
	DefaultChannels = []string{
		"By Hand",
		"Post / Courier",
		"Online Portal",
		"Email",
		"Representative",
	}
)

// Vocabulary is an ordered, case-insensitively unique list of options kept
// in its own slot, apart from case data.
type Vocabulary struct {
	name   string
	slot   string
	store  store.Store
	logger *zap.SugaredLogger

	mu      sync.RWMutex
	options []string
}

func NewVocabulary(name, slot string, defaults []string, st store.Store, logger *zap.SugaredLogger) *Vocabulary {
	return &Vocabulary{
		name:    name,
		slot:    slot,
		store:   st,
		logger:  logger,
		options: slices.Clone(defaults),
	}
}

// Name returns the vocabulary name used in URLs
func (v *Vocabulary) Name() string { return v.name }

// Load reads the slot; a missing or unreadable slot keeps the defaults
func (v *Vocabulary) Load(ctx context.Context) {
	data, err := v.store.Get(ctx, v.slot)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	if err != nil {
		v.logger.Warnw("Failed to read vocabulary, keeping defaults", "vocabulary", v.name, "error", err)
		return
	}
	var options []string
	if err := json.Unmarshal(data, &options); err != nil || len(options) == 0 {
		v.logger.Warnw("Failed to parse vocabulary, keeping defaults", "vocabulary", v.name, "error", err)
		return
	}
	v.mu.Lock()
	v.options = options
	v.mu.Unlock()
}

// Options returns a copy of the options in order
func (v *Vocabulary) Options() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.options)
}

// First returns the default option, "" when empty
func (v *Vocabulary) First() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if len(v.options) == 0 {
		return ""
	}
	return v.options[0]
}

// AddOption appends value unless it is blank or already present. It
// reports whether the list changed.
func (v *Vocabulary) AddOption(ctx context.Context, value string) ([]string, bool, error) {
	value = strings.TrimSpace(value)

	v.mu.Lock()
	defer v.mu.Unlock()

	if value == "" || containsFold(v.options, value) {
		return slices.Clone(v.options), false, nil
	}

	next := append(slices.Clone(v.options), value)
	data, err := json.Marshal(next)
	if err != nil {
		return nil, false, fmt.Errorf("encode vocabulary %s: %w", v.name, err)
	}
	if err := v.store.Put(ctx, v.slot, data); err != nil {
		return nil, false, fmt.Errorf("write vocabulary %s: %w", v.name, err)
	}
	v.options = next

	v.logger.Infow("Vocabulary option added", "vocabulary", v.name, "option", value)
	return slices.Clone(next), true, nil
}

func containsFold(options []string, value string) bool {
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return true
		}
	}
	return false
}

// Vocabularies groups the intake vocabularies by name
type Vocabularies struct {
	Sections *Vocabulary
	Channels *Vocabulary
}

func NewVocabularies(st store.Store, logger *zap.SugaredLogger) *Vocabularies {
	return &Vocabularies{
		Sections: NewVocabulary("sections", store.SlotSections, DefaultSections, st, logger),
		Channels: NewVocabulary("channels", store.SlotChannels, DefaultChannels, st, logger),
	}
}

// Load reads every vocabulary slot
func (vs *Vocabularies) Load(ctx context.Context) {
	vs.Sections.Load(ctx)
	vs.Channels.Load(ctx)
}

// Lookup resolves a vocabulary by name
func (vs *Vocabularies) Lookup(name string) (*Vocabulary, error) {
	switch name {
	case vs.Sections.Name():
		return vs.Sections, nil
	case vs.Channels.Name():
		return vs.Channels, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownVocabulary, name)
}
