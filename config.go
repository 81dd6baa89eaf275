// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package recidx

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kesimo/recidx/internal/tree"
	"gopkg.in/yaml.v3"
)

// Backend selects the tree implementation behind both engine indexes.
type Backend string

const (
	// BackendBST is a plain binary search tree. Its shape, and therefore the
	// comparison counts, depend on the insertion order.
	// This is the default.
	BackendBST Backend = "bst"
	// BackendBTree is a tidwall b-tree.
	BackendBTree Backend = "btree"
	// BackendGoogleBTree is a google b-tree with a configurable node degree.
	BackendGoogleBTree Backend = "gbtree"
)

// Config represents engine configuration options.
type Config struct {
	// Backend is one of BackendBST, BackendBTree or BackendGoogleBTree.
	Backend Backend `yaml:"backend"`

	// Degree is the node degree of BackendGoogleBTree. Ignored by the other backends.
	Degree int `yaml:"degree"`

	// HistoryFile and SeedFile are only read by the command line front end.
	HistoryFile string `yaml:"history_file"`
	SeedFile    string `yaml:"seed_file"`

	// Logger receives engine events. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend: BackendBST,
		Degree:  tree.DefaultDegree,
	}
}

// LoadConfig reads a yaml configuration file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("recidx: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("recidx: %w: %v", ErrInvalidConfig, err)
	}
	config.applyDefaults()
	return config, config.Validate()
}

func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendBST
	}
	if c.Degree == 0 {
		c.Degree = tree.DefaultDegree
	}
}

// Validate checks the backend and the degree.
func (c Config) Validate() error {
	switch c.Backend {
	default:
		return fmt.Errorf("recidx: %w: %q", ErrInvalidBackend, c.Backend)
	case BackendBST, BackendBTree, BackendGoogleBTree, "":
	}
	if c.Degree < 0 || c.Degree == 1 {
		return fmt.Errorf("recidx: %w: degree %d", ErrInvalidConfig, c.Degree)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newIndex creates an empty index of the configured backend.
func newIndex[K cmp.Ordered, V any](c Config) tree.Index[K, V] {
	switch c.Backend {
	case BackendBTree:
		return tree.NewOrderedGBTree[K, V]()
	case BackendGoogleBTree:
		return tree.NewOrderedGoogleBTree[K, V](c.Degree)
	default:
		return tree.NewOrderedBST[K, V]()
	}
}
