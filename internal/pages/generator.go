// Package pages renders one static HTML page per portfolio project.
package pages

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"delizur.dev/internal/logging"
	"delizur.dev/internal/models"
)

// DefaultOGImage is used for og:image when a project has no images
const DefaultOGImage = "/assets/Headshot.jpg"

// PageFile is the file written inside each project directory
const PageFile = "index.html"

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageData holds the data passed to the page template
type pageData struct {
	Project  models.Project
	SiteName string
	OGImage  string
}

// Generator writes <OutputDir>/<slug>/index.html for each project
type Generator struct {
	OutputDir string
	SiteName  string
	Workers   int

	tmpl   *template.Template
	logger *zap.Logger
}

// NewGenerator creates a Generator. Workers below 1 means sequential.
func NewGenerator(outputDir, siteName string, workers int, logger *zap.Logger) (*Generator, error) {
	tmpl, err := template.New("project.html.tmpl").
		Funcs(template.FuncMap{"esc": Escape}).
		ParseFS(templateFS, "templates/project.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Generator{
		OutputDir: outputDir,
		SiteName:  siteName,
		Workers:   workers,
		tmpl:      tmpl,
		logger:    logging.OrNop(logger),
	}, nil
}

// Render writes the page for p to w
func (g *Generator) Render(w io.Writer, p models.Project) error {
	data := pageData{
		Project:  p,
		SiteName: g.SiteName,
		OGImage:  p.CoverImage(DefaultOGImage),
	}
	if err := g.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", p.Slug, err)
	}
	return nil
}

// Generate writes every project page and returns the slugs written in
// record order. Records without a slug, or whose slug would leave the
// output directory, are skipped. When two records share a slug the later
// one wins, as it would in a sequential run.
func (g *Generator) Generate(ctx context.Context, projects []models.Project) ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	last := make(map[string]int, len(projects))
	for i, p := range projects {
		last[p.Slug] = i
	}

	var jobs []int
	for i, p := range projects {
		switch {
		case p.Slug == "":
			g.logger.Warn("skipping project with no slug", zap.String("title", p.Title))
		case !filepath.IsLocal(p.Slug):
			g.logger.Warn("skipping project with unsafe slug", zap.String("slug", p.Slug))
		case last[p.Slug] != i:
			g.logger.Warn("duplicate slug, later record wins", zap.String("slug", p.Slug), zap.Int("index", i))
		default:
			jobs = append(jobs, i)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	workers := g.Workers
	if workers < 1 {
		workers = 1
	}
	eg.SetLimit(workers)

	for _, i := range jobs {
		p := projects[i]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writePage(p)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(jobs))
	for _, i := range jobs {
		written = append(written, projects[i].Slug)
	}
	return written, nil
}

// PagePath returns where the page for slug is written
func (g *Generator) PagePath(slug string) string {
	return filepath.Join(g.OutputDir, slug, PageFile)
}

func (g *Generator) writePage(p models.Project) error {
	var buf bytes.Buffer
	if err := g.Render(&buf, p); err != nil {
		return err
	}

	path := g.PagePath(p.Slug)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	g.logger.Info("wrote", zap.String("slug", p.Slug), zap.String("path", path))
	return nil
}
