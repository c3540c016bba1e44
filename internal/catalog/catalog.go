// Package catalog loads the read-only cocktail catalog served by the API.
//
// The catalog is a fixed snapshot: it is read once at startup from the
// embedded default, a local JSON/YAML file or an S3 object, validated, and
// then handed to the recipe service. Nothing writes to it afterwards.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nightcap/backend/internal/model"
)

//go:embed data/cocktails.json
var defaultCatalog []byte

var (
	// ErrDuplicateSlug is returned when two records share a slug
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Format is the encoding of a catalog document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// ObjectReader fetches a catalog document from remote storage
type ObjectReader interface {
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

// Source selects where the catalog is loaded from. The zero value selects the
// embedded default catalog.
type Source struct {
	Path      string
	ObjectKey string
	Objects   ObjectReader
}

func (s Source) String() string {
	switch {
	case s.ObjectKey != "":
		return "object " + s.ObjectKey
	case s.Path != "":
		return "file " + s.Path
	default:
		return "embedded default"
	}
}

// Load reads, parses and validates the catalog from src
func Load(ctx context.Context, src Source) ([]model.Recipe, error) {
	switch {
	case src.ObjectKey != "":
		if src.Objects == nil {
			return nil, fmt.Errorf("no object reader configured for catalog %s", src.ObjectKey)
		}
		return LoadObject(ctx, src.Objects, src.ObjectKey)
	case src.Path != "":
		return LoadFile(src.Path)
	default:
		return Default()
	}
}

// Default returns the catalog embedded in the binary
func Default() ([]model.Recipe, error) {
	return decodeAndValidate(defaultCatalog, FormatJSON)
}

// LoadFile loads a catalog from a local .json, .yaml or .yml file
func LoadFile(path string) ([]model.Recipe, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return decodeAndValidate(data, format)
}

// LoadObject loads a catalog document through an ObjectReader; the key's
// extension selects the format
func LoadObject(ctx context.Context, r ObjectReader, key string) ([]model.Recipe, error) {
	format, err := FormatFromPath(key)
	if err != nil {
		return nil, err
	}
	data, err := r.ReadObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog object: %w", err)
	}
	return decodeAndValidate(data, format)
}

// FormatFromPath infers the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a catalog document without validating it
func Parse(data []byte, format Format) ([]model.Recipe, error) {
	var recipes []model.Recipe
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&recipes); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalog: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&recipes); err != nil {
			return nil, fmt.Errorf("failed to decode YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return recipes, nil
}

// Validate checks every record and the pairwise uniqueness of slugs
func Validate(recipes []model.Recipe) error {
	seen := make(map[string]int, len(recipes))
	for i, r := range recipes {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("invalid catalog record %d (%q): %w", i, r.Slug, err)
		}
		if first, ok := seen[r.Slug]; ok {
			return fmt.Errorf("%w %q at records %d and %d", ErrDuplicateSlug, r.Slug, first, i)
		}
		seen[r.Slug] = i
	}
	return nil
}

func decodeAndValidate(data []byte, format Format) ([]model.Recipe, error) {
	recipes, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if err := Validate(recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
