package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	require.NotNil(t, Logger)
	Logger.Infof("no-op logger accepts %s", "calls")
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Initialize(true))
	require.NotNil(t, Logger)

	require.NoError(t, Initialize(false))
	require.NotNil(t, Logger)
}
