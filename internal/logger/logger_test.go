package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err)
			assert.NotNil(t, Log)
			assert.NotPanics(t, func() {
				Log.Infow("initialized", "level", lvl)
			})
		})
	}
}

func TestInitialize_BadLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.Error(t, Initialize("loud"))
}

func TestLog_DefaultIsNop(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.IsType(t, &zap.SugaredLogger{}, Log)
	assert.NotPanics(t, func() {
		Log.Infow("before initialize")
		Sync()
	})
}
