package common

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParamsFrom(t *testing.T) {
	a := assert.New(t)

	t.Run("Defaults", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{})

		a.Equal("INFO", params.LogLevel())
		a.Equal(DefaultRootPath(), params.RootPath())
		a.Equal(DefaultPreferencesPath(), params.PreferencesPath())
		a.GreaterOrEqual(params.DecodeWorkers(), 1)
	})
	t.Run("Explicit values", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
			"-logLevel", "DEBUG",
			"-preferences", "/tmp/prefs.db",
			"-decodeWorkers", "3",
			"/some/dir",
		})

		a.Equal("DEBUG", params.LogLevel())
		a.Equal("/some/dir", params.RootPath())
		a.Equal("/tmp/prefs.db", params.PreferencesPath())
		a.Equal(3, params.DecodeWorkers())
	})
	t.Run("Workers are at least one", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-decodeWorkers", "0"})

		a.Equal(1, params.DecodeWorkers())
	})
}

func TestDefaultRootPath(t *testing.T) {
	a := assert.New(t)
	t.Setenv("HOME", "/home/tester")

	a.Equal(filepath.Join("/home/tester", "Downloads"), DefaultRootPath())
}
