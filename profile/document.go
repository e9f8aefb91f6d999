package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// documentExtensions are the recognized profile document formats.
var documentExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".toml": true,
}

// LoadDocument reads a profile document from disk. The format is
// selected by extension (.json, .yaml, .yml, .toml). A missing file
// is ErrProfileNotFound; a malformed or invalid document is
// ErrInvalidProfile.
func LoadDocument(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
		}
		return Profile{}, fmt.Errorf("read profile document: %w", err)
	}

	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	case ".toml":
		err = toml.Unmarshal(data, &p)
	default:
		return Profile{}, fmt.Errorf("%w: %s: unsupported document format %q", ErrInvalidProfile, path, ext)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, path, err)
	}

	if p.Name == "" {
		// Fall back to the file stem so `phone-landscape.json` works
		// without repeating the name inside the document.
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Save writes the profile as a JSON document under dir, named after
// the profile. Returns the written path.
func Save(p Profile, dir string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create profile dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	path := filepath.Join(dir, p.Name+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write profile document: %w", err)
	}
	return path, nil
}

// DocumentSchema returns the JSON schema for a profile document,
// suitable for editor validation of user-supplied profiles.
func DocumentSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&Profile{})
	schema.Title = "sumkit profile document"
	schema.Description = "Screen and font parameters for one viewing context."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
