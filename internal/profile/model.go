package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Color identifies one of the seven lesson colors. The set is closed:
// achievement updates for anything outside it are rejected at parse time.
type Color string

const (
	Merah  Color = "merah"
	Jingga Color = "jingga"
	Kuning Color = "kuning"
	Hijau  Color = "hijau"
	Biru   Color = "biru"
	Nila   Color = "nila"
	Ungu   Color = "ungu"
)

// AllColors lists the seven colors in rainbow order.
func AllColors() []Color {
	return []Color{Merah, Jingga, Kuning, Hijau, Biru, Nila, Ungu}
}

// ParseColor normalizes and validates a color key.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Merah, Jingga, Kuning, Hijau, Biru, Nila, Ungu:
		return c, nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// Achievements holds the per-color unlocked flags. Flags only ever move
// from false to true.
type Achievements struct {
	Merah  bool `json:"merah"`
	Jingga bool `json:"jingga"`
	Kuning bool `json:"kuning"`
	Hijau  bool `json:"hijau"`
	Biru   bool `json:"biru"`
	Nila   bool `json:"nila"`
	Ungu   bool `json:"ungu"`
}

// Unlock sets the flag for the given color. Unlocking an already-unlocked
// color is a no-op.
func (a *Achievements) Unlock(c Color) {
	switch c {
	case Merah:
		a.Merah = true
	case Jingga:
		a.Jingga = true
	case Kuning:
		a.Kuning = true
	case Hijau:
		a.Hijau = true
	case Biru:
		a.Biru = true
	case Nila:
		a.Nila = true
	case Ungu:
		a.Ungu = true
	}
}

// Unlocked reports whether the flag for the given color is set.
func (a Achievements) Unlocked(c Color) bool {
	switch c {
	case Merah:
		return a.Merah
	case Jingga:
		return a.Jingga
	case Kuning:
		return a.Kuning
	case Hijau:
		return a.Hijau
	case Biru:
		return a.Biru
	case Nila:
		return a.Nila
	case Ungu:
		return a.Ungu
	}
	return false
}

// Count returns the number of unlocked colors.
func (a Achievements) Count() int {
	n := 0
	for _, c := range AllColors() {
		if a.Unlocked(c) {
			n++
		}
	}
	return n
}

// Profile represents a row in the profiles table: one save slot owned by
// exactly one user. Name is unique per owner.
type Profile struct {
	ID               uuid.UUID    `json:"id"`
	UserID           uuid.UUID    `json:"userId"`
	Name             string       `json:"name"`
	Achievements     Achievements `json:"achievements"`
	MinigamesCleared int          `json:"minigamesCleared"`
	CreatedAt        time.Time    `json:"createdAt"`
	LastUsed         time.Time    `json:"lastUsed"`
}
