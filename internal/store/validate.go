package store

import (
	"encoding/json"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/homeboard/homeboard/internal/model"
)

// ErrReorderMismatch is returned when a reorder request is not a permutation
// of the project's current shortcut subset.
var ErrReorderMismatch = errors.New("reorder is not a permutation of the current shortcuts")

// ParseBundle decodes an export file. Invalid JSON and structurally wrong
// payloads (a string where an array belongs) are rejected here, before any
// live state is touched.
func ParseBundle(data []byte) (model.Bundle, error) {
	var b model.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Bundle{}, fmt.Errorf("parse bundle: %w", err)
	}
	if err := ValidateBundle(&b); err != nil {
		return model.Bundle{}, err
	}
	return b, nil
}

// ValidateBundle checks an import payload against the declared schema:
// projects and shortcuts need ids (projects also names), shortcut types must
// be from the closed enumeration, memo keys must be calendar dates, and
// network addresses must parse as IPs when present.
func ValidateBundle(b *model.Bundle) error {
	seen := make(map[string]bool, len(b.Projects))
	for i := range b.Projects {
		p := &b.Projects[i]
		if err := validation.ValidateStruct(p,
			validation.Field(&p.ID, validation.Required),
			validation.Field(&p.Name, validation.Required),
		); err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}

	if err := validateShortcuts("shortcuts", b.Shortcuts); err != nil {
		return err
	}
	if err := validateShortcuts("globalShortcuts", b.GlobalShortcuts); err != nil {
		return err
	}

	for key := range b.CalendarMemos {
		if err := validation.Validate(key, validation.Required, validation.Date(model.DateKeyLayout)); err != nil {
			return fmt.Errorf("calendarMemos[%q]: %w", key, err)
		}
	}

	if ns := b.GlobalNetworkSettings; ns != nil {
		if err := validation.ValidateStruct(ns,
			validation.Field(&ns.IP, is.IPv4),
			validation.Field(&ns.Gateway, is.IPv4),
		); err != nil {
			return fmt.Errorf("globalNetworkSettings: %w", err)
		}
	}
	return nil
}

func validateShortcuts(name string, shortcuts []model.Shortcut) error {
	for i := range shortcuts {
		sc := &shortcuts[i]
		if err := validation.ValidateStruct(sc,
			validation.Field(&sc.ID, validation.Required),
			validation.Field(&sc.Path, validation.Required),
			validation.Field(&sc.Type, validation.Required,
				validation.In(model.ShortcutFile, model.ShortcutFolder, model.ShortcutURL)),
		); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
	}
	return nil
}
