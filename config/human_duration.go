package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// HumanDuration is a duration that deserializes from human-readable strings
// like "30s" or "2m".
type HumanDuration time.Duration

func (d *HumanDuration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}

	*d = HumanDuration(parsed)
	return nil
}

func (d HumanDuration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d HumanDuration) Duration() time.Duration {
	return time.Duration(d)
}
