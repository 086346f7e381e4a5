package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/warnaku/warnaku/internal/catalog"
	"github.com/warnaku/warnaku/internal/profile"
)

// MinigamePhase is the minigame's own small state machine.
type MinigamePhase int

const (
	PhaseMenu MinigamePhase = iota
	PhasePlaying
	PhaseCompleted
)

// Minigame is the drag-and-classify game: a randomized pool of objects is
// sorted into color zones; clearing the pool records one minigame
// completion regardless of difficulty.
type Minigame struct {
	phase      MinigamePhase
	difficulty catalog.Difficulty
	zones      []profile.Color
	pool       []catalog.Object
	matched    map[string]profile.Color
	score      int
}

// Phase returns the minigame's current phase.
func (g *Minigame) Phase() MinigamePhase { return g.phase }

// Difficulty returns the chosen difficulty.
func (g *Minigame) Difficulty() catalog.Difficulty { return g.difficulty }

// Zones returns the color zones of the current round.
func (g *Minigame) Zones() []profile.Color { return g.zones }

// Pool returns the objects still waiting to be classified.
func (g *Minigame) Pool() []catalog.Object { return g.pool }

// Score returns the number of correct matches so far.
func (g *Minigame) Score() int { return g.score }

// Matched returns the zone each classified object landed in.
func (g *Minigame) Matched() map[string]profile.Color { return g.matched }

// StartMinigame enters the minigame screen at the difficulty menu.
func (m *Machine) StartMinigame() error {
	if m.screen != ScreenHome {
		return fmt.Errorf("cannot start the minigame from screen %s", m.screen)
	}
	m.game = &Minigame{phase: PhaseMenu}
	m.screen = ScreenMinigame
	return nil
}

// ChooseDifficulty builds a randomized round and starts playing.
func (m *Machine) ChooseDifficulty(d catalog.Difficulty) error {
	g := m.game
	if g == nil || g.phase == PhasePlaying {
		return fmt.Errorf("no minigame menu active")
	}

	numColors, perColor, err := roundDimensions(d)
	if err != nil {
		return err
	}

	colors := catalog.LessonColors()
	m.rng.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
	zones := colors[:numColors]

	var pool []catalog.Object
	for _, c := range zones {
		objs := catalog.LessonObjects(c)
		m.rng.Shuffle(len(objs), func(i, j int) { objs[i], objs[j] = objs[j], objs[i] })
		pool = append(pool, objs[:perColor]...)
	}
	m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	g.phase = PhasePlaying
	g.difficulty = d
	g.zones = zones
	g.pool = pool
	g.matched = map[string]profile.Color{}
	g.score = 0
	return nil
}

func roundDimensions(d catalog.Difficulty) (int, int, error) {
	numColors, perColor := d.Dimensions()
	if numColors == 0 {
		return 0, 0, fmt.Errorf("unknown difficulty %q", d)
	}
	if available := len(catalog.LessonColors()); numColors > available {
		return 0, 0, fmt.Errorf("difficulty %q needs %d colors, only %d available", d, numColors, available)
	}
	return numColors, perColor, nil
}

// DropObject classifies one pooled object into a zone. A correct drop
// removes the object from the pool; clearing the pool records one minigame
// completion (best-effort) and moves to the completed phase. A wrong drop
// leaves the pool untouched and prompts a retry.
func (m *Machine) DropObject(ctx context.Context, objectID string, zone profile.Color) (bool, error) {
	g := m.game
	if g == nil || g.phase != PhasePlaying {
		return false, fmt.Errorf("no minigame round active")
	}

	idx := -1
	for i, obj := range g.pool {
		if obj.ID == objectID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, fmt.Errorf("object %q is not in the pool", objectID)
	}

	obj := g.pool[idx]
	if obj.Color != zone {
		m.narrator.Speak("Coba lagi!")
		return false, nil
	}

	g.pool = append(g.pool[:idx], g.pool[idx+1:]...)
	g.matched[obj.ID] = zone
	g.score++
	m.narrator.Speak(fmt.Sprintf("Benar! %s", obj.Name))

	if len(g.pool) == 0 {
		g.phase = PhaseCompleted
		if m.selected != nil {
			updated, err := m.backend.RecordMinigameClear(ctx, m.selected.ID)
			if err != nil {
				slog.Warn("failed to save minigame completion", "error", err)
			} else {
				*m.selected = *updated
			}
		}
		m.narrator.Cheer()
	}

	return true, nil
}

// ReplayMinigame starts another round at the same difficulty.
func (m *Machine) ReplayMinigame() error {
	g := m.game
	if g == nil || g.phase != PhaseCompleted {
		return fmt.Errorf("no completed minigame to replay")
	}
	g.phase = PhaseMenu
	return m.ChooseDifficulty(g.difficulty)
}

// MinigameMenu returns a completed round to the difficulty menu.
func (m *Machine) MinigameMenu() {
	g := m.game
	if g == nil || g.phase != PhaseCompleted {
		return
	}
	m.game = &Minigame{phase: PhaseMenu}
}
