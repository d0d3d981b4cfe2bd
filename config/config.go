// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

// Package config loads the read buffer size handed to whatever owns the
// codec's byte source. It is a collaborator of the codec, not part of it;
// the codec itself never reads configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBufferSize is the read buffer size in bytes used when no
	// override is present.
	DefaultBufferSize = 65535

	// EnvBufferSize names the environment variable overriding the buffer
	// size.
	EnvBufferSize = "MQTT_PACKET_BUFFER_LENGTH"
)

// Config defines the structure of configuration data to be parsed from a
// config source.
type Config struct {
	// BufferSize is the size in bytes of the read buffer the byte source
	// owner should allocate per connection.
	BufferSize int `yaml:"buffer_size" json:"buffer_size"`
}

// New returns a Config with defaults applied, overridden by the
// MQTT_PACKET_BUFFER_LENGTH environment variable where set. A value which
// is present but not a positive integer is a configuration error, never a
// silent fallback to the default.
func New() (*Config, error) {
	c := &Config{BufferSize: DefaultBufferSize}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromBytes unmarshals a byte slice of JSON or YAML config data into a
// valid Config. The environment override is applied after parsing, so the
// environment always wins over file contents.
func FromBytes(b []byte) (*Config, error) {
	c := &Config{BufferSize: DefaultBufferSize}

	if len(b) > 0 {
		if b[0] == '{' {
			if err := json.Unmarshal(b, c); err != nil {
				return nil, err
			}
		} else {
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, err
			}
		}
	}

	if c.BufferSize <= 0 {
		return nil, fmt.Errorf("buffer_size must be a positive integer, got %d", c.BufferSize)
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	val, ok := os.LookupEnv(EnvBufferSize)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("parse %s: %w", EnvBufferSize, err)
	}

	if n <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %d", EnvBufferSize, n)
	}

	c.BufferSize = n
	return nil
}
