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

package config_test

import (
	"log/slog"
	"testing"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.FirstID != config.DefaultFirstID {
		t.Fatalf("FirstID = %v, want %v", got.FirstID, config.DefaultFirstID)
	}
	if got.AllowNil != config.DefaultAllowNil {
		t.Fatalf("AllowNil = %v, want %v", got.AllowNil, config.DefaultAllowNil)
	}
	if got.AutoRegister != config.DefaultAutoRegister {
		t.Fatalf("AutoRegister = %v, want %v", got.AutoRegister, config.DefaultAutoRegister)
	}
	if got.IncludeBuiltins != config.DefaultIncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want %v", got.IncludeBuiltins, config.DefaultIncludeBuiltins)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.Logger != nil {
		t.Fatalf("Logger = %v, want nil", got.Logger)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithFirstID(t *testing.T) {
	c := config.NewConfig(config.WithFirstID(100))
	if c.FirstID != 100 {
		t.Fatalf("FirstID = %v, want 100", c.FirstID)
	}

	// NilID is reserved, so 0 and negatives fall back to the default.
	for _, id := range []apis.ID{0, -5} {
		c = config.NewConfig(config.WithFirstID(id))
		if c.FirstID != config.DefaultFirstID {
			t.Fatalf("WithFirstID(%d): FirstID = %v, want %v", id, c.FirstID, config.DefaultFirstID)
		}
	}
}

func TestWithAllowNilAndAutoRegister(t *testing.T) {
	c := config.NewConfig(config.WithAllowNil(false), config.WithAutoRegister(true))
	if c.AllowNil {
		t.Fatalf("AllowNil = %v, want false", c.AllowNil)
	}
	if !c.AutoRegister {
		t.Fatalf("AutoRegister = %v, want true", c.AutoRegister)
	}
}

func TestWithMaxUnwrap(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}

	c = config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}

	// Normalize treats zero as unset.
	c = config.NewConfig(config.WithMaxUnwrap(0))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithIncludeBuiltins(false),
		config.WithIncludeBuiltins(true),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithFirstID(7),
		config.WithFirstID(9),
	)

	if !c.IncludeBuiltins {
		t.Errorf("IncludeBuiltins = %v, want true (last option wins)", c.IncludeBuiltins)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if c.FirstID != 9 {
		t.Errorf("FirstID = %v, want 9 (last option wins)", c.FirstID)
	}
}

func TestLogger(t *testing.T) {
	if l := config.Logger(config.DefaultConfig()); l == nil {
		t.Fatal("Logger(default) = nil, want discard logger")
	}

	own := slog.New(slog.DiscardHandler)
	c := config.NewConfig(config.WithLogger(own))
	if got := config.Logger(c); got != own {
		t.Fatalf("Logger = %p, want %p", got, own)
	}
}
