// Package profile stores the local simulated account and its credit
// balance as a JSON file next to the API keys.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/luckystation/luckygen/internal/economy"
	"github.com/luckystation/luckygen/internal/keys"
	"github.com/luckystation/luckygen/pkg/models"
)

var (
	// ErrNotLoggedIn is returned when no profile exists on disk.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAlreadyClaimed is returned when the daily reward was already
	// claimed on the current calendar date.
	ErrAlreadyClaimed = errors.New("daily reward already claimed today")
)

// adDelay simulates watching a rewarded ad.
const adDelay = 3 * time.Second

type Store struct {
	configDir string
	now       func() time.Time
	adDelay   time.Duration
}

// NewStore creates a profile store in the shared config directory.
func NewStore() (*Store, error) {
	configDir, err := keys.ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(configDir), nil
}

// NewStoreWithDir creates a profile store in a specific directory.
func NewStoreWithDir(dir string) *Store {
	return &Store{
		configDir: dir,
		now:       time.Now,
		adDelay:   adDelay,
	}
}

// Path returns the path to the profile.json file.
func (s *Store) Path() string {
	return filepath.Join(s.configDir, "profile.json")
}

// Load reads the current profile. ErrNotLoggedIn when none exists.
func (s *Store) Load() (*models.UserProfile, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile.json: %w", err)
	}
	return &profile, nil
}

func (s *Store) save(profile *models.UserProfile) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile.json: %w", err)
	}
	return nil
}

// Login creates a local profile with the welcome credit grant. Logging in
// while a profile exists returns the existing profile unchanged.
func (s *Store) Login(name, email string) (*models.UserProfile, error) {
	if existing, err := s.Load(); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotLoggedIn) {
		return nil, err
	}

	if name == "" {
		name = "Lucky User"
	}
	profile := &models.UserProfile{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Credits: economy.WelcomeCredits,
	}
	if err := s.save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Logout removes the profile file. Logging out while logged out is not an
// error.
func (s *Store) Logout() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeductCredit charges one generation. The balance may go negative; the
// user brings their own API key, so generation is never blocked on
// credits. The new balance is returned even when persisting fails.
func (s *Store) DeductCredit() (int, error) {
	profile, err := s.Load()
	if err != nil {
		return 0, err
	}

	profile.Credits -= economy.GenerationCost
	if err := s.save(profile); err != nil {
		return profile.Credits, err
	}
	return profile.Credits, nil
}

// AddCredits grants n credits and returns the new balance.
func (s *Store) AddCredits(n int) (int, error) {
	profile, err := s.Load()
	if err != nil {
		return 0, err
	}

	profile.Credits += n
	if err := s.save(profile); err != nil {
		return profile.Credits, err
	}
	return profile.Credits, nil
}

// CanClaimDaily reports whether the daily reward is still unclaimed for
// the current calendar date. The comparison is by local date, not by a
// 24-hour window.
func (s *Store) CanClaimDaily() (bool, error) {
	profile, err := s.Load()
	if err != nil {
		return false, err
	}
	if profile.LastDailyClaim == 0 {
		return true, nil
	}

	last := time.UnixMilli(profile.LastDailyClaim)
	now := s.now()
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2, nil
}

// ClaimDaily grants the daily reward once per calendar date.
func (s *Store) ClaimDaily() (int, error) {
	ok, err := s.CanClaimDaily()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrAlreadyClaimed
	}

	profile, err := s.Load()
	if err != nil {
		return 0, err
	}
	profile.Credits += economy.DailyReward
	profile.LastDailyClaim = s.now().UnixMilli()
	if err := s.save(profile); err != nil {
		return profile.Credits, err
	}
	return profile.Credits, nil
}

// WatchAd simulates a rewarded ad view and grants the ad reward. The delay
// is cancellable through the context.
func (s *Store) WatchAd(ctx context.Context) (int, error) {
	if _, err := s.Load(); err != nil {
		return 0, err
	}

	select {
	case <-time.After(s.adDelay):
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	return s.AddCredits(economy.AdReward)
}
