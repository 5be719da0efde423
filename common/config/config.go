package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.scnd.dev/open/commandgen/package/erroring"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

func New[T any](directory string, name string) (*T, error) {
	// * construct config file path
	configPath := filepath.Join(directory, name)

	// * read config file
	bytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, erroring.IO("unable to read configuration file", err)
	}

	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return nil, erroring.Config("error processing templates", err)
	}

	// * create new config instance
	config := new(T)

	// * parse config
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, erroring.Config("unable to parse configuration file", err)
	}

	return config, nil
}

func Validate(config any) error {
	if err := validate.Struct(config); err != nil {
		return erroring.Config("invalid configuration", err)
	}
	return nil
}

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template replaces {{ env.NAME || fallback }} placeholders. Parts are tried
// left to right: env lookups that are empty fall through, anything else is
// taken literally (JSON values are re-rendered as YAML).
func Template(bytes []byte) ([]byte, error) {
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * split by separator
		parts := strings.Split(content, "||")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		// * check each part
		for _, part := range parts {
			if strings.HasPrefix(part, "env.") {
				key := strings.TrimPrefix(part, "env.")
				value := os.Getenv(key)
				if value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found, return empty
		return []byte("")
	})

	return processed, nil
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	// * remove trailing newline
	return strings.TrimSuffix(string(bytes), "\n"), nil
}
