package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/bnema/chatshell/internal/domain/entity"
)

const schemaBaseURL = "https://github.com/bnema/chatshell/"

// ConfigSchema returns the JSON schema of config.toml.
func ConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaBaseURL + schemaFileName)
	schema.Title = "chatshell configuration"
	schema.Description = "Configuration schema for chatshell, a multi-account desktop shell for a web chat service"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// AccountsSchema returns the JSON schema of the accounts file.
func AccountsSchema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&[]entity.Account{})
	schema.ID = jsonschema.ID(schemaBaseURL + "accounts.schema.json")
	schema.Title = "chatshell accounts"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the configuration schema to path.
func GenerateSchemaFile(path string) error {
	data, err := ConfigSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
