package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/metailurini/lfset/internal/party"
)

type config struct {
	Servants         *int    `hcl:"servants,optional"`
	Presents         *int    `hcl:"presents,optional"`
	SpotCheckPercent *int    `hcl:"spot_check_percent,optional"`
	Verbose          *bool   `hcl:"verbose,optional"`
	Seed             *uint64 `hcl:"seed,optional"`
}

// ReadHCL decodes an HCL (or HCL-flavoured JSON) file on top of the default
// configuration. Attributes left out of the file keep their defaults.
func ReadHCL(filename string) (party.Config, error) {
	var rawCfg config

	if err := hclsimple.DecodeFile(filename, nil, &rawCfg); err != nil {
		return party.Config{}, fmt.Errorf("decoding HCL config file: %w", err)
	}

	cfg := party.DefaultConfig()
	if rawCfg.Servants != nil {
		cfg.Servants = *rawCfg.Servants
	}
	if rawCfg.Presents != nil {
		cfg.Presents = *rawCfg.Presents
	}
	if rawCfg.SpotCheckPercent != nil {
		cfg.SpotCheckPercent = *rawCfg.SpotCheckPercent
	}
	if rawCfg.Verbose != nil {
		cfg.Verbose = *rawCfg.Verbose
	}
	if rawCfg.Seed != nil {
		cfg.Seed = *rawCfg.Seed
	}

	return cfg, nil
}
