package config

import (
	_ "embed"
)

//go:embed example.yaml
var exampleYaml string

// Example returns an example producer yaml.
func Example() string {
	return exampleYaml
}
