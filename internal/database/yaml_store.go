package database

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/plazo/internal/models"
	"gopkg.in/yaml.v3"
)

// projectFile is the on-disk layout of a YAML data source
type projectFile struct {
	Projects []*models.Project `yaml:"projects"`
}

// YAMLStore serves projects decoded from a YAML file
type YAMLStore struct {
	path     string
	projects []*models.Project
}

// OpenYAML reads and validates the projects in path
func OpenYAML(path string) (*YAMLStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open project file: %w", err)
	}
	defer f.Close()

	projects, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return &YAMLStore{path: path, projects: projects}, nil
}

// DecodeYAML decodes and validates a project document
func DecodeYAML(r io.Reader) ([]*models.Project, error) {
	var doc projectFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidData)
		}
		return nil, fmt.Errorf("%w: failed to decode projects: %w", ErrInvalidData, err)
	}
	if err := ValidateProjects(doc.Projects); err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

// EncodeYAML writes projects in the layout DecodeYAML reads
func EncodeYAML(w io.Writer, projects []*models.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(projectFile{Projects: projects}); err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	return enc.Close()
}

// GetAllProjects returns the projects in file order
func (s *YAMLStore) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.projects, nil
}

// Path returns the file the store was loaded from
func (s *YAMLStore) Path() string {
	return s.path
}

// Close is a no-op; the file is read once at open time
func (s *YAMLStore) Close() error {
	return nil
}
