package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/kitchen_totals/calculator"
	"github.com/mmdatafocus/kitchen_totals/config"
	"github.com/mmdatafocus/kitchen_totals/loader"
	"github.com/mmdatafocus/kitchen_totals/metrics"
	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/mmdatafocus/kitchen_totals/report"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/mmdatafocus/kitchen_totals/validation"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/mmdatafocus/kitchen_totals/workflow"

var tracer = otel.Tracer(tracerName)

// Inputs are the records of one run, as loaded.
type Inputs struct {
	Orders      []models.Order
	Products    []models.Product
	Ingredients []models.ProductIngredients
}

type Result struct {
	RunId    string
	Inputs   Inputs
	Failures []validation.Failure
	Totals   report.Totals
}

type Pipeline struct {
	cfg     config.BatchConfig
	logger  logrus.FieldLogger
	metrics *metrics.Registry
}

// NewPipeline builds a pipeline; a nil registry gets a private one.
func NewPipeline(logger logrus.FieldLogger, cfg config.BatchConfig, reg *metrics.Registry) *Pipeline {
	cfg.Normalize()
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Pipeline{cfg: cfg, logger: logger, metrics: reg}
}

func (p *Pipeline) Metrics() *metrics.Registry { return p.metrics }

// Run loads, validates and totals one batch. A run id already on ctx is reused. When any record is invalid every violation is
// logged, the error wraps validation.ErrValidationFailed and no totals are computed.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	return p.execute(ctx, "kitchen.run", true)
}

// Check loads and validates only.
func (p *Pipeline) Check(ctx context.Context) (*Result, error) {
	return p.execute(ctx, "kitchen.check", false)
}

func (p *Pipeline) execute(ctx context.Context, spanName string, calculate bool) (result *Result, err error) {
	start := time.Now()
	runId, ok := utils.GetRunIdFromContext(ctx)
	if !ok {
		runId = uuid.NewString()
		ctx = utils.WithRunId(ctx, runId)
	}
	result = &Result{RunId: runId}
	fields := logrus.Fields{"run_id": runId}
	if command, ok := utils.GetCommandFromContext(ctx); ok {
		fields["command"] = command
	}
	logger := p.logger.WithFields(fields)

	ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("run_id", result.RunId)))
	defer func() {
		p.finish(logger, start, err)
		endSpan(span, err)
	}()

	if result.Inputs, err = p.load(ctx, logger); err != nil {
		config.LogError(logger, "batchWorkflow.go", "execute", "load inputs", nil, err)
		return result, err
	}

	if result.Failures, err = p.validate(ctx, logger, result.Inputs); err != nil {
		if !errors.Is(err, validation.ErrValidationFailed) {
			config.LogError(logger, "batchWorkflow.go", "execute", "validate inputs", nil, err)
		}
		return result, err
	}

	if !calculate {
		return result, nil
	}

	result.Totals = p.calculate(ctx, logger, result.Inputs)

	if p.cfg.ReportXlsx != "" {
		if err = report.ExportExcel(result.Totals, p.cfg.ReportXlsx); err != nil {
			config.LogError(logger, "batchWorkflow.go", "execute", "export totals", p.cfg.ReportXlsx, err)
			return result, err
		}
		logger.WithField("file", p.cfg.ReportXlsx).Info("totals exported")
	}
	return result, nil
}

func (p *Pipeline) load(ctx context.Context, logger logrus.FieldLogger) (Inputs, error) {
	_, span := tracer.Start(ctx, "kitchen.load")
	var (
		in  Inputs
		err error
	)
	defer func() { endSpan(span, err) }()

	if in.Orders, err = loader.LoadOrders(logger, p.cfg.OrdersFile); err != nil {
		return in, err
	}
	if in.Products, err = loader.LoadProducts(logger, p.cfg.ProductsFile); err != nil {
		return in, err
	}
	if in.Ingredients, err = loader.LoadIngredients(logger, p.cfg.IngredientsFile); err != nil {
		return in, err
	}

	p.metrics.Loaded(models.EntityKindOrder, len(in.Orders))
	p.metrics.Loaded(models.EntityKindProduct, len(in.Products))
	p.metrics.Loaded(models.EntityKindProductIngredients, len(in.Ingredients))
	span.SetAttributes(
		attribute.Int("orders", len(in.Orders)),
		attribute.Int("products", len(in.Products)),
		attribute.Int("ingredients", len(in.Ingredients)),
	)
	logger.WithFields(logrus.Fields{
		"orders":      len(in.Orders),
		"products":    len(in.Products),
		"ingredients": len(in.Ingredients),
	}).Debug("inputs loaded")
	return in, nil
}

func (p *Pipeline) validate(ctx context.Context, logger logrus.FieldLogger, in Inputs) ([]validation.Failure, error) {
	ctx, span := tracer.Start(ctx, "kitchen.validate", trace.WithAttributes(attribute.Int("workers", p.cfg.ValidationWorkers)))
	var err error
	defer func() { endSpan(span, err) }()

	failures, err := validation.CollectFailures(ctx, p.cfg.ValidationWorkers, in.Orders, in.Products, in.Ingredients)
	if err != nil {
		return nil, err
	}
	if len(failures) == 0 {
		return failures, nil
	}

	for _, f := range failures {
		p.metrics.Invalid(f.Entity)
	}
	validation.LogFailures(logger, failures)
	err = validation.ErrValidationFailed
	return failures, err
}

func (p *Pipeline) calculate(ctx context.Context, logger logrus.FieldLogger, in Inputs) report.Totals {
	_, span := tracer.Start(ctx, "kitchen.calculate")
	defer span.End()

	totals := report.Totals{
		Orders:      calculator.CalculateOrderTotals(in.Orders, in.Products),
		Ingredients: calculator.CalculateIngredientTotals(logger, in.Orders, in.Ingredients),
	}
	p.metrics.OrdersTotalled.Add(float64(len(totals.Orders)))
	span.SetAttributes(attribute.Int("order_totals", len(totals.Orders)))
	return totals
}

func (p *Pipeline) finish(logger logrus.FieldLogger, start time.Time, err error) {
	outcome := "success"
	switch {
	case errors.Is(err, validation.ErrValidationFailed):
		outcome = "invalid"
	case err != nil:
		outcome = "error"
	}
	p.metrics.RunDurationSec.Set(time.Since(start).Seconds())
	p.metrics.Runs.WithLabelValues(outcome).Inc()

	if p.cfg.MetricsFile == "" {
		return
	}
	if werr := p.metrics.WriteToTextfile(p.cfg.MetricsFile); werr != nil {
		config.LogError(logger, "batchWorkflow.go", "finish", "write metrics", p.cfg.MetricsFile, werr)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
