package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warnaku/warnaku/internal/profile"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    profile.Color
		wantErr bool
	}{
		{name: "plain", input: "merah", want: profile.Merah},
		{name: "uppercase", input: "UNGU", want: profile.Ungu},
		{name: "padded", input: "  hijau ", want: profile.Hijau},
		{name: "unknown", input: "emas", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := profile.ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAchievements_UnlockIdempotent(t *testing.T) {
	t.Parallel()

	var a profile.Achievements
	assert.Equal(t, 0, a.Count())

	a.Unlock(profile.Kuning)
	assert.True(t, a.Unlocked(profile.Kuning))
	assert.Equal(t, 1, a.Count())

	// Unlocking again must not change anything.
	a.Unlock(profile.Kuning)
	assert.Equal(t, 1, a.Count())
}

func TestAchievements_AllColors(t *testing.T) {
	t.Parallel()

	var a profile.Achievements
	for _, c := range profile.AllColors() {
		assert.False(t, a.Unlocked(c))
		a.Unlock(c)
		assert.True(t, a.Unlocked(c))
	}
	assert.Equal(t, 7, a.Count())
}
