package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/warnaku/warnaku/internal/catalog"
	"github.com/warnaku/warnaku/internal/profile"
)

// Lesson is the per-color reveal-and-name flow: objects are shown one at a
// time, a reveal speaks the object's name and color, and advancing past the
// last object unlocks the color's achievement.
type Lesson struct {
	color     profile.Color
	objects   []catalog.Object
	index     int
	revealed  map[int]bool
	completed bool
}

// Color returns the lesson's color.
func (l *Lesson) Color() profile.Color { return l.color }

// Current returns the object on display.
func (l *Lesson) Current() (catalog.Object, bool) {
	if len(l.objects) == 0 {
		return catalog.Object{}, false
	}
	return l.objects[l.index], true
}

// Revealed reports whether the current object's name has been revealed.
func (l *Lesson) Revealed() bool { return l.revealed[l.index] }

// Completed reports whether every object has been worked through.
func (l *Lesson) Completed() bool { return l.completed }

// Progress returns how many objects have been revealed and the total count.
func (l *Lesson) Progress() (revealed, total int) {
	return len(l.revealed), len(l.objects)
}

// StartLesson enters the lesson screen for a color. Colors without lesson
// content show an empty lesson that cannot complete.
func (m *Machine) StartLesson(c profile.Color) error {
	if m.screen != ScreenHome {
		return fmt.Errorf("cannot start a lesson from screen %s", m.screen)
	}

	m.lesson = &Lesson{
		color:    c,
		objects:  catalog.LessonObjects(c),
		revealed: map[int]bool{},
	}
	m.screen = ScreenColorLesson
	return nil
}

// RevealObject reveals the current object's name and speaks it together
// with its color, e.g. "Apel, warnanya Merah".
func (m *Machine) RevealObject() {
	l := m.lesson
	if l == nil || l.completed {
		return
	}
	obj, ok := l.Current()
	if !ok {
		return
	}

	l.revealed[l.index] = true
	m.narrator.Speak(fmt.Sprintf("%s, warnanya %s", obj.Name, catalog.Info(l.color).Display))
}

// NextObject advances past a revealed object. Advancing past the last one
// records the color achievement (best-effort), plays the completion cue,
// and leaves the lesson rendered as a completion screen until backed out.
func (m *Machine) NextObject(ctx context.Context) {
	l := m.lesson
	if l == nil || l.completed || !l.Revealed() {
		return
	}

	if l.index < len(l.objects)-1 {
		l.index++
		return
	}

	if m.selected != nil {
		updated, err := m.backend.UnlockAchievement(ctx, m.selected.ID, l.color)
		if err != nil {
			slog.Warn("failed to save achievement", "error", err, "color", l.color)
		} else {
			*m.selected = *updated
		}
	}

	m.narrator.Cheer()
	l.completed = true
}

// PrevObject steps back to the previous object.
func (m *Machine) PrevObject() {
	l := m.lesson
	if l == nil || l.completed || l.index == 0 {
		return
	}
	l.index--
}
