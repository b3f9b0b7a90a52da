package game

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	cfg := DefaultConfig()
	cfg.AsteroidCount = 1
	sim, err := New(cfg, 3)
	require.NoError(t, err)
	sim.Update(0.016, InputFire)

	out := buf.String()
	assert.Contains(t, out, "simulation created")
	assert.Contains(t, out, "bullets fired")

	SetLogger(nil)
	buf.Reset()
	sim.Update(0.3, InputFire)
	assert.Empty(t, buf.String())
	assert.NotNil(t, Logger())
}
