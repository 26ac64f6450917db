package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"delizur.dev/internal/models"
)

// ErrDataNotFound is returned when the projects data file does not exist
var ErrDataNotFound = errors.New("data file not found")

// LoadProjects reads the JSON array of project records at path
func LoadProjects(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDataNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return projects, nil
}

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	if s.projects == nil {
		return []models.Project{}
	}
	return s.projects
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", slug)
}
