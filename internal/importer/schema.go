package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the on-disk catalog: category key to course list.
type CatalogSchema map[string][]CourseImport

// CourseImport defines one catalog course in the import file.
type CourseImport struct {
	Code              string   `json:"code" yaml:"code"`
	Title             string   `json:"title" yaml:"title"`
	Category          string   `json:"category,omitempty" yaml:"category,omitempty"`
	Credits           *float64 `json:"credits" yaml:"credits"`
	Type              string   `json:"type,omitempty" yaml:"type,omitempty"`
	IsNPTEL           *bool    `json:"isNPTEL,omitempty" yaml:"isNPTEL,omitempty"`
	CountsTowardLimit *bool    `json:"countsTowardLimit,omitempty" yaml:"countsTowardLimit,omitempty"`
}

// CompletedSchema is the on-disk list of finished semesters.
type CompletedSchema []CompletedSemesterImport

// CompletedSemesterImport defines one past semester in the import file.
type CompletedSemesterImport struct {
	Number  int                     `json:"number" yaml:"number"`
	Courses []CompletedCourseImport `json:"courses" yaml:"courses"`
}

// CompletedCourseImport defines one passed course in the import file.
type CompletedCourseImport struct {
	Code     string   `json:"code" yaml:"code"`
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Category string   `json:"category" yaml:"category"`
	Credits  *float64 `json:"credits" yaml:"credits"`
	Grade    string   `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// LoadCatalogSchema reads a catalog file. It returns (nil, nil) when the
// file does not exist.
func LoadCatalogSchema(path string) (CatalogSchema, error) {
	var schema CatalogSchema
	found, err := readSchemaFile(path, &schema)
	if err != nil || !found {
		return nil, err
	}
	if schema == nil {
		schema = CatalogSchema{}
	}
	return schema, nil
}

// LoadCompletedSchema reads a completed-semesters file. It returns
// (nil, nil) when the file does not exist.
func LoadCompletedSchema(path string) (CompletedSchema, error) {
	var schema CompletedSchema
	found, err := readSchemaFile(path, &schema)
	if err != nil || !found {
		return nil, err
	}
	return schema, nil
}

func readSchemaFile(path string, out any) (bool, error) {
	if path == "" {
		return false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return true, nil
	}
	if err := decodeSchema(path, data, out); err != nil {
		return true, err
	}
	return true, nil
}

func decodeSchema(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing JSON %s: %w", path, err)
		}
	}
	return nil
}
