package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceAddressIsStable(t *testing.T) {
	assert.Equal(t, InstanceAddress("Pomodoro"), InstanceAddress("Pomodoro"))
	assert.NotEqual(t, InstanceAddress("Pomodoro"), InstanceAddress("Pomodoro-other"))
}

func TestSecondInstanceIsRejected(t *testing.T) {
	name := fmt.Sprintf("pomodoro-test-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
