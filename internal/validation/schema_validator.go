package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// Built-in schema names
const (
	SchemaSaveSlot     = "save_slot.schema.json"
	SchemaSaveEnvelope = "save_envelope.schema.json"
)

// embeddedBaseURL anchors the built-in schemas so relative $refs between them resolve
// without touching the network or the filesystem.
const embeddedBaseURL = "https://tavernsim.local/schemas/"

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schema string) error
	ValidateBytes(data []byte, schema string) error
	ValidateValue(value interface{}, schema string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	embedded bool
}

// NewSchemaValidator creates a new schema validator. Schema names that match a
// built-in schema are served from the binary; anything else is treated as a path.
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schema string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schema)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schema string) error {
	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	return v.validate(jsonData, schema)
}

// ValidateValue validates a Go value by round-tripping it through its JSON form
func (v *validator) ValidateValue(value interface{}, schema string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return v.ValidateBytes(data, schema)
}

func (v *validator) validate(jsonData interface{}, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	url, err := v.addResource(name)
	if err != nil {
		return nil, err
	}

	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// addResource registers the schema with the compiler and returns the URL to compile.
func (v *validator) addResource(name string) (string, error) {
	if isEmbedded(name) {
		if err := v.addEmbedded(); err != nil {
			return "", err
		}
		return embeddedBaseURL + name, nil
	}

	resolvedPath, err := resolveSchemaPath(name)
	if err != nil {
		return "", err
	}

	schemaData, err := os.ReadFile(resolvedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read schema file: %w", err)
	}

	schemaJSON, err := parseSchema(schemaData)
	if err != nil {
		return "", err
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return "", fmt.Errorf("failed to add schema resource: %w", err)
	}
	return name, nil
}

// addEmbedded registers every built-in schema once so cross references resolve.
func (v *validator) addEmbedded() error {
	if v.embedded {
		return nil
	}

	entries, err := fs.ReadDir(embeddedSchemas, "schemas")
	if err != nil {
		return fmt.Errorf("failed to list built-in schemas: %w", err)
	}

	for _, entry := range entries {
		data, err := embeddedSchemas.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read built-in schema %s: %w", entry.Name(), err)
		}
		schemaJSON, err := parseSchema(data)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if err := v.compiler.AddResource(embeddedBaseURL+entry.Name(), schemaJSON); err != nil {
			return fmt.Errorf("failed to add schema resource: %w", err)
		}
	}

	v.embedded = true
	return nil
}

func isEmbedded(name string) bool {
	_, err := fs.Stat(embeddedSchemas, path.Join("schemas", name))
	return err == nil && !strings.ContainsAny(name, `/\`)
}

func parseSchema(data []byte) (interface{}, error) {
	var schemaJSON interface{}
	if err := json.Unmarshal(data, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	return schemaJSON, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if len(err.Causes) == 0 {
		if msg := formatError(err); msg != "" {
			*errors = append(*errors, msg)
		}
		return
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single leaf validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	if err.ErrorKind == nil {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}

	keywords := strings.Join(err.ErrorKind.KeywordPath(), ".")
	if required, ok := err.ErrorKind.(*kind.Required); ok {
		return fmt.Sprintf("  - at %s: required properties missing: %s", location, strings.Join(required.Missing, ", "))
	}
	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

// resolveSchemaPath resolves a schema path, handling both absolute and relative paths.
// Relative paths are searched upward from the working directory until go.mod is found.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		testPath := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(testPath); err == nil {
			return testPath, nil
		}

		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
