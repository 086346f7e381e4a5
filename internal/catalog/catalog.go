// Package catalog holds the fixed lesson content: the seven colors with
// their display data, the per-color object sets used by the color lessons
// and the minigame, and the minigame difficulty levels.
package catalog

import "github.com/warnaku/warnaku/internal/profile"

// Object is a single drawable thing of one color.
type Object struct {
	ID    string
	Name  string
	Image string
	Color profile.Color
}

// ColorInfo carries the presentation data for one color.
type ColorInfo struct {
	Color   profile.Color
	Display string
	Emoji   string
	Hex     string
}

var colorInfos = []ColorInfo{
	{Color: profile.Merah, Display: "Merah", Emoji: "🍎", Hex: "#e74c3c"},
	{Color: profile.Jingga, Display: "Jingga", Emoji: "🍊", Hex: "#e67e22"},
	{Color: profile.Kuning, Display: "Kuning", Emoji: "🌻", Hex: "#f1c40f"},
	{Color: profile.Hijau, Display: "Hijau", Emoji: "🌿", Hex: "#2ecc71"},
	{Color: profile.Biru, Display: "Biru", Emoji: "🌊", Hex: "#3498db"},
	{Color: profile.Nila, Display: "Nila", Emoji: "🦋", Hex: "#5f27cd"},
	{Color: profile.Ungu, Display: "Ungu", Emoji: "🍇", Hex: "#9b59b6"},
}

var lessonObjects = map[profile.Color][]Object{
	profile.Merah: {
		{ID: "merah-1", Name: "Apel", Image: "/images/red-apple.svg", Color: profile.Merah},
		{ID: "merah-2", Name: "Mobil Pemadam", Image: "/images/fire-engine.svg", Color: profile.Merah},
		{ID: "merah-3", Name: "Lobster", Image: "/images/lobster.svg", Color: profile.Merah},
	},
	profile.Kuning: {
		{ID: "kuning-1", Name: "Pisang", Image: "/images/banana.svg", Color: profile.Kuning},
		{ID: "kuning-2", Name: "Lemon", Image: "/images/lemon.svg", Color: profile.Kuning},
		{ID: "kuning-3", Name: "Matahari", Image: "/images/sun.svg", Color: profile.Kuning},
	},
	profile.Hijau: {
		{ID: "hijau-1", Name: "Daun", Image: "/images/leaf.svg", Color: profile.Hijau},
		{ID: "hijau-2", Name: "Melon", Image: "/images/melon.svg", Color: profile.Hijau},
		{ID: "hijau-3", Name: "Semangka", Image: "/images/watermelon.svg", Color: profile.Hijau},
	},
}

// Colors lists the seven colors with display data, in rainbow order.
func Colors() []ColorInfo {
	out := make([]ColorInfo, len(colorInfos))
	copy(out, colorInfos)
	return out
}

// Info returns the display data for a color.
func Info(c profile.Color) ColorInfo {
	for _, info := range colorInfos {
		if info.Color == c {
			return info
		}
	}
	return ColorInfo{Color: c}
}

// LessonObjects returns the object set for a color's lesson, or nil when the
// color has no lesson content yet.
func LessonObjects(c profile.Color) []Object {
	objs := lessonObjects[c]
	if objs == nil {
		return nil
	}
	out := make([]Object, len(objs))
	copy(out, objs)
	return out
}

// LessonColors lists the colors that have lesson content, in rainbow order.
func LessonColors() []profile.Color {
	var out []profile.Color
	for _, info := range colorInfos {
		if len(lessonObjects[info.Color]) > 0 {
			out = append(out, info.Color)
		}
	}
	return out
}

// Difficulty selects the size of a minigame round.
type Difficulty string

const (
	// DifficultySangatMudah plays 2 colors with 2 objects each.
	DifficultySangatMudah Difficulty = "sangat-mudah"
	// DifficultyMudah plays 3 colors with 3 objects each.
	DifficultyMudah Difficulty = "mudah"
)

// Dimensions returns the number of color zones and objects per zone for the
// difficulty, or (0, 0) for an unknown difficulty.
func (d Difficulty) Dimensions() (numColors, objectsPerColor int) {
	switch d {
	case DifficultySangatMudah:
		return 2, 2
	case DifficultyMudah:
		return 3, 3
	}
	return 0, 0
}

// Difficulties lists the selectable difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultySangatMudah, DifficultyMudah}
}
