// Package view implements the client screen state machine: a single
// explicit reducer over a closed set of screens, driven only by user
// actions, so illegal combinations such as an open admin panel without an
// admin user are unrepresentable.
package view

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/warnaku/warnaku/internal/profile"
	"github.com/warnaku/warnaku/internal/token"
)

// Screen enumerates the screens the client can show.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLoggedOut
	ScreenProfileSelect
	ScreenHome
	ScreenColorLesson
	ScreenMinigame
	ScreenAdminPanel
)

// String returns the screen name for logging.
func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenLoggedOut:
		return "logged-out"
	case ScreenProfileSelect:
		return "profile-select"
	case ScreenHome:
		return "home"
	case ScreenColorLesson:
		return "color-lesson"
	case ScreenMinigame:
		return "minigame"
	case ScreenAdminPanel:
		return "admin-panel"
	}
	return "unknown"
}

// MaxProfiles is the client-side soft cap on save slots per user. The
// server does not enforce it.
const MaxProfiles = 10

// Backend is the slice of the REST API the state machine drives.
type Backend interface {
	ListProfiles(ctx context.Context) ([]profile.Profile, error)
	CreateProfile(ctx context.Context, name string) (*profile.Profile, error)
	TouchProfile(ctx context.Context, id uuid.UUID) error
	UnlockAchievement(ctx context.Context, id uuid.UUID, c profile.Color) (*profile.Profile, error)
	RecordMinigameClear(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

// Narrator voices lesson and minigame feedback. Speech synthesis and audio
// playback are host concerns; the default narrator is silent.
type Narrator interface {
	Speak(text string)
	Cheer()
}

type silentNarrator struct{}

func (silentNarrator) Speak(string) {}
func (silentNarrator) Cheer()       {}

// Machine is the client view state machine.
type Machine struct {
	backend  Backend
	narrator Narrator
	rng      *rand.Rand

	screen   Screen
	claims   *token.Claims
	profiles []profile.Profile
	selected *profile.Profile
	lesson   *Lesson
	game     *Minigame
}

// Option configures a Machine.
type Option func(*Machine)

// WithNarrator sets the narrator used for spoken feedback.
func WithNarrator(n Narrator) Option {
	return func(m *Machine) { m.narrator = n }
}

// WithRand sets the random source used to build minigame rounds.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// NewMachine creates a Machine in the Loading screen.
func NewMachine(backend Backend, opts ...Option) *Machine {
	m := &Machine{
		backend:  backend,
		narrator: silentNarrator{},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		screen:   ScreenLoading,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Screen returns the current screen.
func (m *Machine) Screen() Screen { return m.screen }

// Claims returns the decoded credential claims, or nil when logged out.
func (m *Machine) Claims() *token.Claims { return m.claims }

// Profiles returns the profiles loaded for the profile-select screen.
func (m *Machine) Profiles() []profile.Profile { return m.profiles }

// SelectedProfile returns the active save slot, or nil before selection.
func (m *Machine) SelectedProfile() *profile.Profile { return m.selected }

// Lesson returns the active color lesson, or nil outside the lesson screen.
func (m *Machine) Lesson() *Lesson { return m.lesson }

// Minigame returns the active minigame, or nil outside the minigame screen.
func (m *Machine) Minigame() *Minigame { return m.game }

// Resolve exits the Loading screen using the locally stored credential.
// Absent, malformed, or expired tokens resolve to LoggedOut; the claims are
// decoded without signature verification, the same check the browser did.
func (m *Machine) Resolve(storedToken string) {
	if m.screen != ScreenLoading {
		return
	}

	if storedToken == "" {
		m.screen = ScreenLoggedOut
		return
	}

	claims, err := token.DecodeUnverified(storedToken)
	if err != nil {
		m.screen = ScreenLoggedOut
		return
	}

	m.claims = claims
	m.screen = ScreenProfileSelect
}

// LoadProfiles fetches the caller's save slots for the profile-select screen.
func (m *Machine) LoadProfiles(ctx context.Context) error {
	profiles, err := m.backend.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	m.profiles = profiles
	return nil
}

// CreateProfile creates a new save slot. The 10-slot cap is enforced here
// only; the server accepts any number.
func (m *Machine) CreateProfile(ctx context.Context, name string) (*profile.Profile, error) {
	if len(m.profiles) >= MaxProfiles {
		return nil, fmt.Errorf("at most %d profiles allowed", MaxProfiles)
	}

	p, err := m.backend.CreateProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	m.profiles = append(m.profiles, *p)
	return p, nil
}

// DeleteProfile removes a save slot. Deletion is only offered on the
// profile-select screen, where no slot is active; this keeps the active
// profile pointer stable while the list is rewritten.
func (m *Machine) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if m.screen != ScreenProfileSelect {
		return fmt.Errorf("cannot delete a profile from screen %s", m.screen)
	}

	if err := m.backend.DeleteProfile(ctx, id); err != nil {
		return err
	}
	kept := m.profiles[:0]
	for _, p := range m.profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.profiles = kept
	return nil
}

// SelectProfile activates a save slot and moves to Home. The last-used
// touch is best-effort: a failure to record it does not block the
// transition.
func (m *Machine) SelectProfile(ctx context.Context, id uuid.UUID) error {
	if m.screen != ScreenProfileSelect {
		return fmt.Errorf("cannot select a profile from screen %s", m.screen)
	}

	for i := range m.profiles {
		if m.profiles[i].ID == id {
			if err := m.backend.TouchProfile(ctx, id); err != nil {
				slog.Warn("failed to touch profile", "error", err, "profileId", id)
			}
			m.selected = &m.profiles[i]
			m.screen = ScreenHome
			return nil
		}
	}

	return fmt.Errorf("profile %s not loaded", id)
}

// SwitchProfile returns from Home to the profile-select screen.
func (m *Machine) SwitchProfile() {
	if m.screen != ScreenHome {
		return
	}
	m.selected = nil
	m.screen = ScreenProfileSelect
}

// OpenAdmin moves to the admin panel. It is a no-op unless the credential
// carries the admin claim.
func (m *Machine) OpenAdmin() bool {
	if m.screen != ScreenHome || m.claims == nil || !m.claims.IsAdmin {
		return false
	}
	m.screen = ScreenAdminPanel
	return true
}

// CloseAdmin returns from the admin panel to Home.
func (m *Machine) CloseAdmin() {
	if m.screen != ScreenAdminPanel {
		return
	}
	m.screen = ScreenHome
}

// BackToHome leaves the lesson or minigame screen.
func (m *Machine) BackToHome() {
	if m.screen != ScreenColorLesson && m.screen != ScreenMinigame {
		return
	}
	m.lesson = nil
	m.game = nil
	m.screen = ScreenHome
}

// Logout discards the credential and all per-user state.
func (m *Machine) Logout() {
	m.claims = nil
	m.profiles = nil
	m.selected = nil
	m.lesson = nil
	m.game = nil
	m.screen = ScreenLoggedOut
}
