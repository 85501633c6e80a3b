// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/runtime"
)

func TestPersistence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "runtimed.toml")

	// Create
	cfg := Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Color = true
	cfg.Genesis.Accounts = []GenesisAccount{
		{ID: "alice", Balance: "100"},
		{ID: "Bob", Balance: "340282366920938463463374607431768211456"},
	}

	// Store
	require.NoError(t, Store(cfg, file))

	// Load
	lcfg, err := Load(file)
	require.NoError(t, err)

	// Should be equal
	require.Equal(t, cfg, lcfg)
}

func TestLoadDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "runtimed.toml")
	require.NoError(t, os.WriteFile(file, []byte("[genesis]\n"), 0600))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "runtimed.toml")
	require.NoError(t, Store(Default(), file))

	t.Setenv("RUNTIMED_LOGGING_LEVEL", "debug")
	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"BadFormat": "[logging]\nformat = \"xml\"\n",
		"BadLevel":  "[logging]\nlevel = \"runtime=loud\"\n",
		"Negative":  "[[genesis.accounts]]\nid = \"alice\"\nbalance = \"-1\"\n",
		"NoID":      "[[genesis.accounts]]\nbalance = \"1\"\n",
		"Duplicate": "[[genesis.accounts]]\nid = \"alice\"\nbalance = \"1\"\n[[genesis.accounts]]\nid = \"alice\"\nbalance = \"2\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "runtimed.toml")
			require.NoError(t, os.WriteFile(file, []byte(content), 0600))

			_, err := Load(file)
			require.ErrorIs(t, err, errors.BadRequest)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestApplyGenesis(t *testing.T) {
	g := Genesis{Accounts: []GenesisAccount{
		{ID: "alice", Balance: "100"},
		{ID: "bob", Balance: "7"},
	}}

	r := runtime.New()
	require.NoError(t, g.Apply(r))
	require.Equal(t, uint64(100), r.Balances().Balance("alice").Uint64())
	require.Equal(t, uint64(7), r.Balances().Balance("bob").Uint64())

	require.NoError(t, r.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 1}}))
	require.ErrorIs(t, g.Apply(r), errors.BadRequest)

	bad := Genesis{Accounts: []GenesisAccount{{ID: "alice", Balance: "lots"}}}
	require.ErrorIs(t, bad.Apply(runtime.New()), errors.BadRequest)
}

func TestLoggingHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Logging{Format: "json", Level: "info"}
	h, err := l.Handler(buf)
	require.NoError(t, err)
	require.NotNil(t, h)

	l.Format = "xml"
	_, err = l.Handler(buf)
	require.ErrorIs(t, err, errors.BadRequest)
}
