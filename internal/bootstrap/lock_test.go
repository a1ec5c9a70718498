package bootstrap

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireInstanceLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "tabcast.lock")

	first, err := AcquireInstanceLock(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))

	_, err = AcquireInstanceLock(path)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := AcquireInstanceLock(path)
	require.NoError(t, err)
	require.NoError(t, second.Release())
}

func TestInstanceLock_NilRelease(t *testing.T) {
	var l *InstanceLock
	assert.NoError(t, l.Release())
}
