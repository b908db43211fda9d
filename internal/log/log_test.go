package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLBeforeInitIsNop(t *testing.T) {
	Set(nil)
	assert.NotNil(t, L())
	L().Infow("dropped")
}

func TestSetRoutesEntries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core).Sugar())
	t.Cleanup(func() { Set(nil) })

	L().Infow("lift computed", "scenario", "pitot", "lift_n", 2940.0)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "lift computed", entries[0].Message)
	assert.Equal(t, "pitot", entries[0].ContextMap()["scenario"])
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	require.NoError(t, Init(false))
	require.NoError(t, Init(true))
	assert.NotNil(t, L())
}
