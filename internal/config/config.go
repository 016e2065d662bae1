/*
 * config.go, part of ballpit.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package config loads the settings of the ballpit command from a YAML
//file, BALLPIT_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables read, so that
//log.level is set by BALLPIT_LOG_LEVEL.
const envPrefix = "BALLPIT"

//Config is the full configuration of the command.
type Config struct {
	Radii        string     `mapstructure:"radii"`         //radii definition file
	DefaultRadii bool       `mapstructure:"default_radii"` //use the built-in covalent radii if Radii is empty
	Hetatm       bool       `mapstructure:"hetatm"`        //read HETATM records from PDB files
	Log          LogConfig  `mapstructure:"log"`
	Plot         PlotConfig `mapstructure:"plot"`
}

//LogConfig selects the level and encoding of the diagnostics.
type LogConfig struct {
	Level  string `mapstructure:"level"`  //debug, info, warn or error
	Format string `mapstructure:"format"` //console or json
}

//PlotConfig is the size of the composition plots, in centimeters.
type PlotConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

//New returns a viper instance with the defaults set and the environment
//bound. Flags can be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("radii", "")
	v.SetDefault("default_radii", false)
	v.SetDefault("hetatm", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("plot.width", 12.0)
	v.SetDefault("plot.height", 9.0)
	return v
}

//Load reads the configuration file path into v and returns the resulting
//Config. If path is empty, ballpit.yaml is looked for in the working
//directory, and it is fine if it is not there.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	} else {
		v.SetConfigName("ballpit")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Validate checks that the values in C make sense.
func (C *Config) Validate() error {
	switch strings.ToLower(C.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", C.Log.Level)
	}
	switch C.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", C.Log.Format)
	}
	if C.Plot.Width <= 0 || C.Plot.Height <= 0 {
		return fmt.Errorf("config: plot size must be positive, got %gx%g", C.Plot.Width, C.Plot.Height)
	}
	return nil
}
