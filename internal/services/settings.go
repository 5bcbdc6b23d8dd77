package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/store"
	"go.uber.org/zap"
)

var ErrInvalidEndpoint = errors.New("dispatch endpoint must be an absolute http(s) URL")

// SettingsService owns the dispatch endpoint slot
type SettingsService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewSettingsService(st store.Store, logger *zap.SugaredLogger) *SettingsService {
	return &SettingsService{store: st, logger: logger}
}

// DispatchEndpoint returns the configured URL, or "" when none is set
func (s *SettingsService) DispatchEndpoint(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, store.SlotDispatchEndpoint)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read dispatch endpoint: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetDispatchEndpoint validates and stores endpoint. An empty value clears it.
func (s *SettingsService) SetDispatchEndpoint(ctx context.Context, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint != "" {
		if err := validateEndpoint(endpoint); err != nil {
			return err
		}
	}
	if err := s.store.Put(ctx, store.SlotDispatchEndpoint, []byte(endpoint)); err != nil {
		return fmt.Errorf("write dispatch endpoint: %w", err)
	}
	s.logger.Infow("Dispatch endpoint updated", "configured", endpoint != "")
	return nil
}

// SeedDispatchEndpoint writes endpoint only when the slot has never been set
func (s *SettingsService) SeedDispatchEndpoint(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return nil
	}
	_, err := s.store.Get(ctx, store.SlotDispatchEndpoint)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read dispatch endpoint: %w", err)
	}
	return s.SetDispatchEndpoint(ctx, endpoint)
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidEndpoint
	}
	return nil
}
