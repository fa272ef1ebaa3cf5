package utils

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLogger(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	// Reset the package singleton so the logger opens in the temp dir.
	mu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = nil
	logger = nil
	mu.Unlock()

	require.NoError(t, InitLogger())
}

func TestLogWritesSurviveRotation(t *testing.T) {
	setupLogger(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			LogInfo(fmt.Sprintf("line %d", i))
		}
	}()

	for i := 0; i < 20; i++ {
		rotateLog()
	}
	<-done

	mu.Lock()
	assert.NotNil(t, logger)
	assert.NotNil(t, logFile)
	mu.Unlock()

	LogInfo("after rotation")

	data, err := os.ReadFile("logs/app.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "after rotation")
}

func TestRotateRenamesCurrentFile(t *testing.T) {
	setupLogger(t)

	LogInfo("before rotation")
	rotateLog()
	LogInfo("after rotation")

	entries, err := os.ReadDir("logs")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 2)

	data, err := os.ReadFile("logs/app.log")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "before rotation")
	assert.Contains(t, string(data), "after rotation")
}
