// Copyright 2025 The coverassign Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads solve parameters from the environment and an
// optional configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/allocsuite/coverassign/assign"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "COVERASSIGN"

// Configuration keys. Each key is also read from the environment as
// EnvPrefix + "_" + upper-cased key, e.g. COVERASSIGN_TIME_LIMIT.
const (
	KeyTolerance    = "tolerance"
	KeyMaxVariables = "max_variables"
	KeyTimeLimit    = "time_limit"
)

// Load returns solve parameters, starting from assign.DefaultParams and
// applying overrides from the environment and, when path is non-empty,
// the configuration file at path (format inferred from the extension,
// e.g. YAML). The result is validated before being returned.
func Load(path string) (assign.Params, error) {
	v := viper.New()

	defaults := assign.DefaultParams()
	v.SetDefault(KeyTolerance, defaults.Tolerance)
	v.SetDefault(KeyMaxVariables, defaults.MaxVariables)
	v.SetDefault(KeyTimeLimit, defaults.TimeLimit)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return assign.Params{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	params := assign.Params{
		Tolerance:    v.GetFloat64(KeyTolerance),
		MaxVariables: v.GetInt(KeyMaxVariables),
		TimeLimit:    v.GetDuration(KeyTimeLimit),
	}
	if err := params.Validate(); err != nil {
		return assign.Params{}, err
	}
	return params, nil
}
