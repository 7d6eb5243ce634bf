package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Equal(t, 100.0, Player.Speed)
	assert.Equal(t, 45.0, Player.SpawnRotationDeg)
	assert.Equal(t, 128.0, Enemy.SpawnY)
	assert.Equal(t, 32, Combat.HitboxDecay)
	assert.Equal(t, 60, Physics.TicksPerSecond)
	assert.NoError(t, CurrentTuning().Validate())
}

func TestParseTuningOverlaysBase(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	data := []byte(`
player:
  speed: 140
combat:
  hitboxDecay: 20
`)
	tuning, err := ParseTuning(data, CurrentTuning())
	require.NoError(t, err)

	assert.Equal(t, 140.0, tuning.Player.Speed)
	assert.Equal(t, 20, tuning.Combat.HitboxDecay)
	assert.Equal(t, 32.0, tuning.Player.BodySize, "keys not named keep their value")
	assert.Equal(t, 100.0, Player.Speed, "parsing does not apply")

	tuning.Apply()
	assert.Equal(t, 140.0, Player.Speed)
	assert.Equal(t, 20, Combat.HitboxDecay)
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative speed", "player:\n  speed: -1\n"},
		{"zero decay", "combat:\n  hitboxDecay: 0\n"},
		{"zero hops", "combat:\n  maxOwnerHops: 0\n"},
		{"zero hurtbox", "enemy:\n  hurtboxRadius: 0\n"},
		{"no ticks", "physics:\n  ticksPerSecond: 0\n"},
		{"no cells", "physics:\n  cellSize: 0\n"},
		{"player spawn past the arena edge", "player:\n  spawnY: 2200\n"},
		{"enemy spawn past the arena edge", "enemy:\n  spawnX: -3000\n"},
		{"arena shrunk below the enemy spawn", "physics:\n  arenaHeight: 200\n"},
	}

	Reset()
	t.Cleanup(Reset)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml), CurrentTuning())
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestArenaContains(t *testing.T) {
	pc := PhysicsConfig{ArenaWidth: 256, ArenaHeight: 128}

	assert.True(t, pc.Contains(0, 0, 32))
	assert.True(t, pc.Contains(112, -48, 32), "touching the walls is inside")
	assert.False(t, pc.Contains(113, 0, 32))
	assert.False(t, pc.Contains(0, 49, 32))
	assert.False(t, pc.Contains(0, 0, 300))
}

func TestParseTuningMalformed(t *testing.T) {
	_, err := ParseTuning([]byte("player: [unclosed"), CurrentTuning())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadTuning(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  spawnY: 64\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, tuning.Enemy.SpawnY)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTuningWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 100\n"), 0o644))

	tw, err := NewTuningWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tw.Close() })

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 120\n"), 0o644))

	var got string
	require.Eventually(t, func() bool {
		p, ok := tw.Poll()
		if ok {
			got = p
		}
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
