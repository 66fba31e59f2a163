package timeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/resolver"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// Service defines all timeline-related business operations
type Service interface {
	ListProjects(ctx context.Context) ([]*models.Project, error)
	Resolve(ctx context.Context, query any) (*Resolution, error)
	Layout(ctx context.Context, req LayoutRequest) (*LayoutResult, error)
}

// Resolution is a resolved project plus the rule that selected it
type Resolution struct {
	Project *models.Project
	Rule    resolver.Rule
	Index   int
}

// LayoutRequest encapsulates the inputs of a timeline view
type LayoutRequest struct {
	Query       any
	ColumnWidth int
	Filter      models.Filter
}

// LayoutResult is everything needed to draw one project's timeline
type LayoutResult struct {
	Project      *models.Project
	Rule         resolver.Rule
	Filter       models.Filter
	ColumnWidth  int
	Bars         []timeline.Bar
	Days         []timeline.Day
	SpanDays     int
	TotalWidth   int
	TodayOffset  int
	TodayVisible bool
}

// repository defines the data access methods needed by the timeline service
// This interface is private to the service layer
type repository interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	engine *timeline.Engine
}

// NewService creates a new timeline service over repo. A nil engine uses
// the wall clock and default bar width.
func NewService(repo repository, engine *timeline.Engine) Service {
	if engine == nil {
		engine = timeline.NewEngine()
	}
	return &service{repo: repo, engine: engine}
}

// ListProjects retrieves all projects in source order
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

// Resolve selects the project identified by query
func (s *service) Resolve(ctx context.Context, query any) (*Resolution, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(projects, query)
}

func (s *service) resolve(projects []*models.Project, query any) (*Resolution, error) {
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	p, rule := resolver.Match(projects, query)
	if rule == resolver.RuleFallback {
		slog.Info("project query matched nothing, using first project", "query", query, "project", p.ID)
	} else {
		slog.Debug("resolved project", "query", query, "project", p.ID, "rule", rule.String())
	}

	index := 0
	for i, candidate := range projects {
		if candidate == p {
			index = i
			break
		}
	}
	return &Resolution{Project: p, Rule: rule, Index: index}, nil
}

// Layout resolves the query and computes the Gantt geometry for its tasks
func (s *service) Layout(ctx context.Context, req LayoutRequest) (*LayoutResult, error) {
	if req.ColumnWidth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumnWidth, req.ColumnWidth)
	}
	filter, err := models.ParseFilter(string(req.Filter))
	if err != nil {
		return nil, err
	}

	res, err := s.Resolve(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	p := res.Project

	offset, visible := s.engine.ScrollToTodayOffset(p, req.ColumnWidth)
	return &LayoutResult{
		Project:      p,
		Rule:         res.Rule,
		Filter:       filter,
		ColumnWidth:  req.ColumnWidth,
		Bars:         s.engine.ComputeFiltered(p, req.ColumnWidth, filter),
		Days:         s.engine.Days(p),
		SpanDays:     timeline.ProjectSpanDays(p),
		TotalWidth:   timeline.TotalWidth(p, req.ColumnWidth),
		TodayOffset:  offset,
		TodayVisible: visible,
	}, nil
}
