package config

import (
	"gopkg.in/yaml.v3"
)

type Root struct {
	Api     ApiService  `json:"api" yaml:"api"`
	Console Console     `json:"console" yaml:"console"`
	Logging LoggingRoot `json:"logging" yaml:"logging"`
}

// Console carries the page-size tuning for the review console screens.
type Console struct {
	// DefaultPageSize is the page size sent on paged queries when the caller does not specify one
	DefaultPageSize int `json:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`

	// LinkAnalysisPageSize is the page size for link-analysis queries, which fan out wider than queue views
	LinkAnalysisPageSize int `json:"link_analysis_page_size,omitempty" yaml:"link_analysis_page_size,omitempty"`

	// DictionaryResultLimit caps the number of typeahead suggestions requested per keystroke
	DictionaryResultLimit int `json:"dictionary_result_limit,omitempty" yaml:"dictionary_result_limit,omitempty"`
}

const (
	defaultPageSize              = 25
	defaultLinkAnalysisPageSize  = 100
	defaultDictionaryResultLimit = 10
)

func (c *Console) DefaultPageSizeOrDefault() int {
	if c.DefaultPageSize > 0 {
		return c.DefaultPageSize
	}
	return defaultPageSize
}

func (c *Console) LinkAnalysisPageSizeOrDefault() int {
	if c.LinkAnalysisPageSize > 0 {
		return c.LinkAnalysisPageSize
	}
	return defaultLinkAnalysisPageSize
}

func (c *Console) DictionaryResultLimitOrDefault() int {
	if c.DictionaryResultLimit > 0 {
		return c.DictionaryResultLimit
	}
	return defaultDictionaryResultLimit
}

func UnmarshallYamlRootString(data string) (*Root, error) {
	return UnmarshallYamlRoot([]byte(data))
}

func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return &root, nil
}
