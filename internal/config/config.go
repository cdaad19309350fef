package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/metailurini/lfset/internal/party"
	"github.com/metailurini/lfset/internal/partylog"
)

// FlagError is a special type marking that the error is a result of a flag parsing error.
type FlagError struct {
	error
}

const envPrefix = "PRESENTS_"

const defaultFilename = "presents.hcl"

type discoveryOrigin int

const (
	discoveryOriginNone discoveryOrigin = iota
	discoveryOriginEnv
	discoveryOriginAuto
)

func (o discoveryOrigin) String() string {
	switch o {
	case discoveryOriginEnv:
		return "env"
	case discoveryOriginAuto:
		return "auto"
	default:
		return "none"
	}
}

func discoverPath() (string, discoveryOrigin, bool) {
	if value, ok := os.LookupEnv(envPrefix + "CONFIG"); ok {
		return value, discoveryOriginEnv, true
	}

	if _, err := os.Stat(defaultFilename); err == nil {
		return defaultFilename, discoveryOriginAuto, true
	}

	return "", discoveryOriginNone, false
}

func LogLevel() slog.Level {
	levelMapping := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	if level, ok := levelMapping[os.Getenv(envPrefix+"LOG_LEVEL")]; ok {
		return level
	}

	return slog.LevelInfo
}

// Load builds the run configuration from defaults, an optional HCL file and
// command-line flags, in increasing order of precedence.
func Load(logger partylog.Logger, args []string) (party.Config, error) {
	logger = logger.WithComponent("presents.config")

	defaults := party.DefaultConfig()
	flagCfg := defaults
	var configPath string

	fs := flag.NewFlagSet("presents", flag.ContinueOnError)
	fs.Func("config", "Manually specified path to the config file. By default, the config is autodiscovered.", func(s string) error {
		if _, err := os.Stat(s); err != nil {
			return fmt.Errorf("config file %q does not exist or is inaccessible: %s", s, err)
		}

		configPath = s

		return nil
	})
	fs.IntVar(&flagCfg.Servants, "servants", defaults.Servants, "Number of servants working concurrently.")
	fs.IntVar(&flagCfg.Presents, "presents", defaults.Presents, "Number of presents in the bag.")
	fs.IntVar(&flagCfg.SpotCheckPercent, "spot-check", defaults.SpotCheckPercent, "Chance in percent that the Minotaur asks about a random present on each servant step.")
	fs.BoolVar(&flagCfg.Verbose, "verbose", defaults.Verbose, "Log every spot check at info level.")
	fs.Uint64Var(&flagCfg.Seed, "seed", defaults.Seed, "Shuffle seed; 0 picks a random one.")

	if err := fs.Parse(args); err != nil {
		return party.Config{}, FlagError{fmt.Errorf("parsing flags: %w", err)}
	}

	if configPath == "" {
		discovered, origin, ok := discoverPath()
		if !ok {
			logger.Debug("No config file found, and no --config flag was provided. Using defaults and flags.")
		} else {
			configPath = discovered
			logger.Info(fmt.Sprintf("Using discovered config file %q", configPath), "discovery_origin", origin.String())
		}
	}

	cfg := defaults
	if configPath != "" {
		fileCfg, err := ReadHCL(configPath)
		if err != nil {
			return party.Config{}, err
		}
		cfg = fileCfg
	}

	// Flags set explicitly on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "servants":
			cfg.Servants = flagCfg.Servants
		case "presents":
			cfg.Presents = flagCfg.Presents
		case "spot-check":
			cfg.SpotCheckPercent = flagCfg.SpotCheckPercent
		case "verbose":
			cfg.Verbose = flagCfg.Verbose
		case "seed":
			cfg.Seed = flagCfg.Seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return party.Config{}, fmt.Errorf("validating configuration: %w", err)
	}

	return cfg, nil
}
