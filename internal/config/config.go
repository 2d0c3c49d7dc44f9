package config

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

func Parse(r io.Reader) (*Producer, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var p Producer
	err := decoder.Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func keyEmptyError(key string) error {
	return fmt.Errorf("key '%s' is missing or value is empty", key)
}
