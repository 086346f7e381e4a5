package validation

import (
	"errors"
	"strings"
)

// ErrProfileNameRequired is returned for empty or whitespace-only names.
var ErrProfileNameRequired = errors.New("Profile name is required")

// ProfileName trims a profile display name and rejects empty input. No
// further sanitization is applied.
func ProfileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrProfileNameRequired
	}
	return name, nil
}
