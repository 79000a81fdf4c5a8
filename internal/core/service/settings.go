package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

const (
	DefaultUILanguage = "id"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var _ port.PreferenceKeeper = (*SettingsService)(nil)

// SettingsService keeps the language and theme preferences, each a
// single string under its own snapshot key. Invalid or unreadable
// stored values fall back to the defaults.
type SettingsService struct {
	store port.SnapshotStore
}

func NewSettingsService(store port.SnapshotStore) SettingsService {
	return SettingsService{store: store}
}

func (s SettingsService) Language() string {
	v := s.read("SettingsService.Language", keyLanguage)
	if v == "" {
		return DefaultUILanguage
	}
	return v
}

func (s SettingsService) SetLanguage(lang string) error {
	const op = "SettingsService.SetLanguage"

	if len(lang) != 2 {
		return fmt.Errorf("%s: %q: expected a two-letter language tag", op, lang)
	}
	return s.write(op, keyLanguage, lang)
}

func (s SettingsService) Theme() string {
	v := s.read("SettingsService.Theme", keyTheme)
	if v != ThemeLight && v != ThemeDark {
		return ThemeLight
	}
	return v
}

func (s SettingsService) SetTheme(theme string) error {
	const op = "SettingsService.SetTheme"

	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%s: %q: unknown theme", op, theme)
	}
	return s.write(op, keyTheme, theme)
}

func (s SettingsService) read(op, key string) string {
	log := slog.With("op", op)

	data, err := s.store.Get(key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn("failed to read preference", "key", key, "err", err)
		}
		return ""
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("malformed preference", "key", key, "err", err)
		return ""
	}
	return v
}

func (s SettingsService) write(op, key, value string) error {
	data, _ := json.Marshal(value)
	if err := s.store.Set(key, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
