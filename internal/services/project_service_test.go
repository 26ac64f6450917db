package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"delizur.dev/internal/models"
)

func TestLoadProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data := `[
  {"slug": "demo-project", "title": "Demo", "images": ["/a.png", "/b.png"], "tags": ["go"], "github": "https://github.com/x/demo"},
  {"slug": "other", "title": "Other", "subtitle": "Sub"}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	projects, err := LoadProjects(path)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "demo-project", projects[0].Slug)
	require.Equal(t, []string{"/a.png", "/b.png"}, projects[0].Images)
	require.Equal(t, "https://github.com/x/demo", projects[0].GitHub)
	require.Empty(t, projects[1].Demo)
}

func TestLoadProjectsMissingFile(t *testing.T) {
	_, err := LoadProjects(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrDataNotFound)
}

func TestLoadProjectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"slug":`), 0o644))

	_, err := LoadProjects(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDataNotFound)
}

func TestProjectService(t *testing.T) {
	svc := NewProjectService([]models.Project{{Slug: "a", Title: "A"}, {Slug: "b", Title: "B"}})
	require.Len(t, svc.GetAll(), 2)

	p, err := svc.GetBySlug("b")
	require.NoError(t, err)
	require.Equal(t, "B", p.Title)

	_, err = svc.GetBySlug("c")
	require.Error(t, err)

	require.NotNil(t, NewProjectService(nil).GetAll())
}
