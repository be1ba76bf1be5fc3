/*
 * config_test.go, part of gotraj.
 *
 * Copyright 2024 The gotraj Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(Te *testing.T) {
	wd, err := os.Getwd()
	require.NoError(Te, err)
	require.NoError(Te, os.Chdir(Te.TempDir()))
	Te.Cleanup(func() { os.Chdir(wd) })
	Te.Setenv("HOME", Te.TempDir())
	cfg, err := Load("")
	require.NoError(Te, err)
	require.Equal(Te, &Config{LogLevel: "info", LogFormat: "text", Progress: true, Workers: 4}, cfg)
}

func TestLoadFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "dcdtool.yaml")
	require.NoError(Te, os.WriteFile(name, []byte("log_level: debug\nworkers: 8\nprogress: false\n"), 0o644))
	cfg, err := Load(name)
	require.NoError(Te, err)
	require.Equal(Te, "debug", cfg.LogLevel)
	require.Equal(Te, 8, cfg.Workers)
	require.False(Te, cfg.Progress)

	Te.Setenv("DCDTOOL_LOG_FORMAT", "json")
	cfg, err = Load(name)
	require.NoError(Te, err)
	require.Equal(Te, "json", cfg.LogFormat)
}

func TestLoadInvalid(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "bad.yaml")
	require.NoError(Te, os.WriteFile(name, []byte("log_level: loud\n"), 0o644))
	_, err := Load(name)
	require.Error(Te, err)

	require.NoError(Te, os.WriteFile(name, []byte("workers: 0\n"), 0o644))
	_, err = Load(name)
	require.Error(Te, err)
}
