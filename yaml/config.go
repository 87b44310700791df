// Package yaml loads ingestion run configuration from YAML files.
package yaml

import (
	"os"

	"github.com/wczarnecki/docgather"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the collection file path used when the config omits one.
const DefaultOutput = "collected_docs.json"

// Config is the on-disk shape of a run configuration. Sources are grouped
// by kind; within a group they run in the order listed.
type Config struct {
	Output      string        `yaml:"output"`
	ReadTheDocs []SourceEntry `yaml:"readthedocs"`
	GitHub      []SourceEntry `yaml:"github"`
	Websites    []SourceEntry `yaml:"websites"`
}

// SourceEntry is one configured source. Fields not applying to the
// entry's kind are ignored.
type SourceEntry struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Owner    string `yaml:"owner"`
	Repo     string `yaml:"repo"`
	Token    string `yaml:"token"`
	MaxPages int    `yaml:"max_pages"`
	MaxDepth int    `yaml:"max_depth"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "reading config %q: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "parsing config %q: %v", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return &cfg, nil
}

// Sources flattens the grouped entries into ordered source configs:
// structured docs first, then repositories, then generic websites.
func (c *Config) Sources() []docgather.SourceConfig {
	var sources []docgather.SourceConfig
	for _, e := range c.ReadTheDocs {
		sources = append(sources, e.sourceConfig(docgather.SourceReadTheDocs))
	}
	for _, e := range c.GitHub {
		sources = append(sources, e.sourceConfig(docgather.SourceGitHub))
	}
	for _, e := range c.Websites {
		sources = append(sources, e.sourceConfig(docgather.SourceWebsite))
	}
	return sources
}

func (e SourceEntry) sourceConfig(kind docgather.Source) docgather.SourceConfig {
	return docgather.SourceConfig{
		Name:     e.Name,
		Kind:     kind,
		URL:      e.URL,
		Owner:    e.Owner,
		Repo:     e.Repo,
		Token:    e.Token,
		MaxPages: e.MaxPages,
		MaxDepth: e.MaxDepth,
	}
}
