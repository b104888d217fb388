// Copyright 2026 lamW Authors
//
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

// Package config holds the execution settings of the lamw tool: how many
// workers evaluate large inputs, how work is batched, and how results are
// printed. Algorithm constants are not configurable.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aadler/lamW/lambertw"
	"github.com/aadler/lamW/workerpool"
)

// Environment variables read by ApplyEnv.
const (
	EnvWorkers    = "LAMW_WORKERS"
	EnvBatch      = "LAMW_BATCH"
	EnvBranch     = "LAMW_BRANCH"
	EnvNoParallel = "LAMW_NO_PARALLEL"
)

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk and in-memory form of the settings.
type Config struct {
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Parallel enables the worker pool for large inputs.
	Parallel bool `yaml:"parallel"`

	// Batch is the number of elements a worker claims at a time; 0 selects
	// lambertw.ParallelBatch.
	Batch int `yaml:"batch"`

	// Branch is the default branch of the eval command.
	Branch string `yaml:"branch"`

	// Format is the fmt verb used to print each result.
	Format string `yaml:"format"`
}

// Default returns the settings used when no file or environment overrides
// are present.
func Default() Config {
	return Config{
		Workers:  0,
		Parallel: true,
		Batch:    lambertw.ParallelBatch,
		Branch:   lambertw.Principal.String(),
		Format:   "%v",
	}
}

// Load reads a YAML file on top of Default. Keys that are not part of Config
// are rejected. An empty file yields the defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(b, path)
}

// Parse decodes YAML bytes on top of Default. name is used in error messages.
func Parse(b []byte, name string) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the LAMW_* variables using lookup, which has
// the signature of os.LookupEnv.
//
// LAMW_NO_PARALLEL follows the usual switch convention: values accepted by
// strconv.ParseBool are honoured, any other non-empty value counts as true.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvBatch); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvBatch, v, err)
		}
		c.Batch = n
	}
	if v, ok := lookup(EnvBranch); ok && v != "" {
		c.Branch = v
	}
	if v, ok := lookup(EnvNoParallel); ok && v != "" {
		noParallel := true
		if b, err := strconv.ParseBool(v); err == nil {
			noParallel = b
		}
		c.Parallel = !noParallel
	}
	return c.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Batch < 0 {
		return fmt.Errorf("%w: batch must be >= 0, got %d", ErrInvalidConfig, c.Batch)
	}
	if _, err := lambertw.ParseBranch(c.Branch); err != nil {
		return fmt.Errorf("%w: branch: %v", ErrInvalidConfig, err)
	}
	if s := fmt.Sprintf(c.Format, 1.5); c.Format == "" || strings.Contains(s, "%!") {
		return fmt.Errorf("%w: format %q is not a single float verb", ErrInvalidConfig, c.Format)
	}
	return nil
}

// BranchValue returns the parsed default branch.
func (c Config) BranchValue() (lambertw.Branch, error) {
	return lambertw.ParseBranch(c.Branch)
}

// NewPool returns a worker pool sized by Workers, or nil when Parallel is
// off. The caller owns the pool and must Close it.
func (c Config) NewPool() *workerpool.Pool {
	if !c.Parallel {
		return nil
	}
	return workerpool.New(c.Workers)
}
