package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const citiesSchemaURL = "cities.schema.json"

var (
	schemaOnce     sync.Once
	citiesSchema   *jsonschema.Schema
	citiesSchemaErr error
)

// schema compiles the embedded city catalog schema once.
func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(citiesSchemaURL, bytes.NewReader(citiesSchemaJSON)); err != nil {
			citiesSchemaErr = fmt.Errorf("config: cannot load schema: %w", err)
			return
		}
		citiesSchema, citiesSchemaErr = c.Compile(citiesSchemaURL)
		if citiesSchemaErr != nil {
			citiesSchemaErr = fmt.Errorf("config: cannot compile schema: %w", citiesSchemaErr)
		}
	})
	return citiesSchema, citiesSchemaErr
}

// ValidateYAML checks a raw city catalog document against the schema.
// The YAML tree is re-encoded as JSON so the validator sees JSON types.
func ValidateYAML(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: invalid yaml: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: cannot convert document: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config: cannot convert document: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("config: schema violation: %w", err)
	}
	return nil
}
