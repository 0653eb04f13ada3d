package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/ramodel/internal/config"
	"github.com/specialistvlad/ramodel/internal/ctxlog"
	"github.com/specialistvlad/ramodel/internal/model"
	"github.com/specialistvlad/ramodel/internal/modelcache"
)

// Run evaluates every model and comparison in the loaded study and writes
// the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	report, err := a.Evaluate(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(a.outW, a.config.OutputFormat, report); err != nil {
		return err
	}

	if a.config.MetricsFile != "" {
		if err := a.metrics.WriteToTextfile(a.config.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
		a.logger.Debug("Metrics written.", "path", a.config.MetricsFile)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Evaluate builds the study's models and runs its comparisons.
func (a *App) Evaluate(ctx context.Context) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	ws, err := buildWorkspace(ctx, a.study)
	if err != nil {
		return nil, fmt.Errorf("failed to build variable catalog: %w", err)
	}

	cache := modelcache.New(a.metrics)
	models := make(map[string]*model.Model, len(a.study.Models))
	owners := make(map[int]string, len(a.study.Models))
	report := &Report{
		Variables:   ws.vars.Len(),
		Directed:    ws.vars.IsDirected(),
		SaturatedDF: ws.vars.DegreesOfFreedom(),
	}

	logger.Info("🚀 Evaluating models...", "count", len(a.study.Models))
	for _, cm := range a.study.Models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mr, m, err := a.evaluateModel(ctx, ws, cache, cm)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", cm.Name, err)
		}
		if owner, ok := owners[m.ID]; ok {
			mr.DuplicateOf = owner
		} else {
			owners[m.ID] = cm.Name
		}
		models[cm.Name] = m
		report.Models = append(report.Models, mr)
	}
	report.Relations = ws.relations.Len()

	for _, c := range a.study.Comparisons {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cr, err := a.compare(cache, c, models[c.Left], models[c.Right])
		if err != nil {
			return nil, fmt.Errorf("comparison %q: %w", c.Name, err)
		}
		report.Comparisons = append(report.Comparisons, cr)
	}

	logger.Info("🏁 Evaluation finished.", "models", len(report.Models), "cached", cache.Len())
	return report, nil
}

func (a *App) evaluateModel(ctx context.Context, ws *workspace, cache *modelcache.Cache, cm *config.Model) (ModelReport, *model.Model, error) {
	logger := ctxlog.FromContext(ctx)

	built, err := ws.buildModel(cm, cache)
	if err != nil {
		return ModelReport{}, nil, err
	}

	m, added := cache.AddModel(built)
	mr := ModelReport{
		Name:            cm.Name,
		ID:              m.ID,
		Notation:        m.PrintName(false),
		InverseNotation: m.PrintName(true),
		RelationCount:   m.RelationCount(),
		StateBased:      m.IsStateBased(),
	}
	if !added {
		built.Release()
		logger.Debug("Model already cached.", "model", cm.Name, "id", m.ID)
	}

	matrix, err := m.StructureMatrix()
	if err != nil {
		return ModelReport{}, nil, err
	}
	mr.MatrixRows = len(matrix.Rows)
	mr.MatrixColumns = matrix.StateSpaceSize
	a.metrics.ObserveStateSpace(matrix.StateSpaceSize)

	if mr.DegreesOfFreedom, err = m.DegreesOfFreedom(); err != nil {
		return ModelReport{}, nil, err
	}
	if saturated := ws.vars.DegreesOfFreedom(); mr.DegreesOfFreedom > saturated+model.DFTolerance {
		return ModelReport{}, nil, fmt.Errorf("degrees of freedom %g exceed the saturated %g", mr.DegreesOfFreedom, saturated)
	}
	a.metrics.IncrementModelsEvaluated()

	logger.Debug("Model evaluated.",
		"model", cm.Name,
		"notation", mr.Notation,
		"relations", mr.RelationCount,
		"df", mr.DegreesOfFreedom,
	)
	return mr, m, nil
}

func (a *App) compare(cache *modelcache.Cache, c *config.Comparison, left, right *model.Model) (ComparisonReport, error) {
	a.metrics.IncrementComparisons()
	cr := ComparisonReport{Name: c.Name, Left: c.Left, Right: c.Right}

	var err error
	if cr.LeftContains, err = left.ContainsModel(right, cache); err != nil {
		return cr, err
	}
	if cr.RightContains, err = right.ContainsModel(left, cache); err != nil {
		return cr, err
	}
	if cr.Equivalent, err = left.IsEquivalentTo(right, cache); err != nil {
		return cr, err
	}
	return cr, nil
}
