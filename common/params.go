package common

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
)

const (
	defaultDirectoryName = "Downloads"
	applicationDirName   = "image-binder"
	preferencesFileName  = "preferences.db"
)

type Params struct {
	logLevel        string
	rootPath        string
	preferencesPath string
	decodeWorkers   int
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:        "INFO",
		rootPath:        DefaultRootPath(),
		preferencesPath: DefaultPreferencesPath(),
		decodeWorkers:   runtime.NumCPU(),
	}
}

func ParseParams() *Params {
	return ParseParamsFrom(flag.CommandLine, os.Args[1:])
}

func ParseParamsFrom(flags *flag.FlagSet, arguments []string) *Params {
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	preferencesPath := flags.String("preferences", DefaultPreferencesPath(), "Preferences database file")
	decodeWorkers := flags.Int("decodeWorkers", runtime.NumCPU(), "Maximum number of thumbnails decoded in parallel")

	_ = flags.Parse(arguments)

	rootPath := flags.Arg(0)
	if rootPath == "" {
		rootPath = DefaultRootPath()
	}

	workers := *decodeWorkers
	if workers < 1 {
		workers = 1
	}

	return &Params{
		logLevel:        *logLevel,
		rootPath:        rootPath,
		preferencesPath: *preferencesPath,
		decodeWorkers:   workers,
	}
}

// DefaultRootPath is the user's Downloads directory, or the working
// directory when the home directory can't be resolved.
func DefaultRootPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, defaultDirectoryName)
	}
	return "."
}

func DefaultPreferencesPath() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, applicationDirName, preferencesFileName)
	}
	return preferencesFileName
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) RootPath() string {
	return s.rootPath
}

func (s *Params) PreferencesPath() string {
	return s.preferencesPath
}

func (s *Params) DecodeWorkers() int {
	return s.decodeWorkers
}
