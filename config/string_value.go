package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// StringValue is a config value that can be specified directly as a scalar,
// or indirectly via an environment variable or a file:
//
//	api_key: sekret
//	api_key:
//	  env_var: FRISK_API_KEY
//	api_key:
//	  file: /var/run/secrets/frisk_api_key
type StringValue struct {
	value  string
	envVar string
	file   string
}

func (v *StringValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.value = node.Value
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("string value expected a scalar or mapping node")
	}

	var aux struct {
		Value  string `yaml:"value"`
		EnvVar string `yaml:"env_var"`
		File   string `yaml:"file"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}

	v.value = aux.Value
	v.envVar = aux.EnvVar
	v.file = aux.File
	return nil
}

// HasValue checks if this value has data.
func (v *StringValue) HasValue() bool {
	val, err := v.GetValue()
	return err == nil && len(val) > 0
}

// GetValue retrieves the configured value, resolving indirection.
func (v *StringValue) GetValue() (string, error) {
	if v.value != "" {
		return v.value, nil
	}

	if v.envVar != "" {
		val, present := os.LookupEnv(v.envVar)
		if !present || len(val) == 0 {
			return "", errors.Errorf("environment variable '%s' does not have value", v.envVar)
		}
		return val, nil
	}

	if v.file != "" {
		data, err := os.ReadFile(v.file)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read value from file '%s'", v.file)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return "", nil
}
