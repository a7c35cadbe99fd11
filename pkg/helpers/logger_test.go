package helpers

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHelpers(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "request failed", errors.New("boom"), logrus.Fields{"path": "/usuarios"})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "boom", entry.Data["error"])
	assert.Equal(t, "/usuarios", entry.Data["path"])

	LogWarn(logger, "event publish failed", nil, nil)
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.NotContains(t, entry.Data, "error")

	assert.NotPanics(t, func() { LogError(nil, "x", errors.New("y"), nil) })
	assert.NotPanics(t, func() { LogWarn(nil, "x", nil, nil) })
}
