// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	require.Equal(t, DefaultBufferSize, c.BufferSize)
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv(EnvBufferSize, "2048")
	c, err := New()
	require.NoError(t, err)
	require.Equal(t, 2048, c.BufferSize)
}

func TestNewEnvUnparseable(t *testing.T) {
	// A present but bad value is an error, never a fallback to defaults.
	t.Setenv(EnvBufferSize, "sixty-four")
	_, err := New()
	require.Error(t, err)
}

func TestNewEnvNonPositive(t *testing.T) {
	for _, val := range []string{"0", "-1"} {
		t.Setenv(EnvBufferSize, val)
		_, err := New()
		require.Error(t, err, "value %q", val)
	}
}

func TestFromBytesYaml(t *testing.T) {
	c, err := FromBytes([]byte("buffer_size: 4096\n"))
	require.NoError(t, err)
	require.Equal(t, 4096, c.BufferSize)
}

func TestFromBytesJson(t *testing.T) {
	c, err := FromBytes([]byte(`{"buffer_size": 8192}`))
	require.NoError(t, err)
	require.Equal(t, 8192, c.BufferSize)
}

func TestFromBytesEmpty(t *testing.T) {
	c, err := FromBytes(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultBufferSize, c.BufferSize)
}

func TestFromBytesInvalid(t *testing.T) {
	_, err := FromBytes([]byte("\tbuffer_size: 4096"))
	require.Error(t, err)

	_, err = FromBytes([]byte(`{"buffer_size": `))
	require.Error(t, err)
}

func TestFromBytesNonPositive(t *testing.T) {
	_, err := FromBytes([]byte("buffer_size: 0\n"))
	require.Error(t, err)

	_, err = FromBytes([]byte(`{"buffer_size": -5}`))
	require.Error(t, err)
}

func TestFromBytesEnvWins(t *testing.T) {
	t.Setenv(EnvBufferSize, "1024")
	c, err := FromBytes([]byte("buffer_size: 4096\n"))
	require.NoError(t, err)
	require.Equal(t, 1024, c.BufferSize)
}
