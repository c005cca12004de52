package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file schema:
//
//	directory: etl
//	skip_unknown: true
//	extensions:
//	  ".xyz": ["mytool", "-f"]
type fileConfig struct {
	Directory   string              `yaml:"directory"`
	SkipUnknown *bool               `yaml:"skip_unknown"`
	Extensions  map[string][]string `yaml:"extensions"`
}

// ApplyFile loads cfg.ConfigFile and applies its values to cfg. Fields the
// user set on the command line (per fs.Changed) are left alone, and --ext
// entries win over file entries for the same extension, so flags always
// override the file.
func ApplyFile(cfg *Config, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "parse %s", cfg.ConfigFile)
	}

	if fc.Directory != "" && !fs.Changed("directory") {
		cfg.Directory = NormalizeDirArg(fc.Directory)
	}
	if fc.SkipUnknown != nil && !fs.Changed("skip-unknown") {
		cfg.SkipUnknown = *fc.SkipUnknown
	}
	for ext, argv := range fc.Extensions {
		if _, fromFlag := cfg.Extensions[ext]; fromFlag {
			continue
		}
		cfg.Extensions[ext] = argv
	}
	return nil
}
