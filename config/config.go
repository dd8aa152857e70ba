/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"

	"dirpx.dev/relx/apis"
)

const (
	// DefaultFirstID represents the default for FirstID.
	// IDs start at 1 so that 0 stays free for apis.NilID.
	DefaultFirstID apis.ID = 1
	// DefaultAllowNil represents the default for AllowNil.
	// When true, nil keys and values act as the "no entity" sentinel.
	DefaultAllowNil = true
	// DefaultAutoRegister represents the default for AutoRegister.
	// Entities are expected to be registered when they are created.
	DefaultAutoRegister = false
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FirstID:         DefaultFirstID,
		AllowNil:        DefaultAllowNil,
		AutoRegister:    DefaultAutoRegister,
		IncludeBuiltins: DefaultIncludeBuiltins,
		MaxUnwrap:       DefaultMaxUnwrap,
	}
}

// Normalize replaces out-of-range values in cfg with their defaults.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.FirstID < 1 {
		cfg.FirstID = DefaultFirstID
	}
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// Logger returns cfg.Logger, or a logger that discards everything.
func Logger(cfg apis.Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFirstID sets the FirstID option.
// A value below 1 resets to the default.
func WithFirstID(id apis.ID) Option {
	return func(c *apis.Config) {
		if id < 1 {
			c.FirstID = DefaultFirstID
			return
		}
		c.FirstID = id
	}
}

// WithAllowNil sets the AllowNil option.
func WithAllowNil(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowNil = allow
	}
}

// WithAutoRegister sets the AutoRegister option.
func WithAutoRegister(auto bool) Option {
	return func(c *apis.Config) {
		c.AutoRegister = auto
	}
}

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
