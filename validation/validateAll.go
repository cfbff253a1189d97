package validation

import (
	"context"
	"errors"
	"runtime"
	"strconv"

	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrValidationFailed = errors.New("validation failed, please check validation messages")

// Failure lists every violation of one invalid record.
type Failure struct {
	Entity     models.EntityKind
	Key        string
	Violations []Violation
}

type recordCheck func() *Failure

// ValidateAll validates every record and returns ErrValidationFailed when any record is
// invalid, after logging each violation. The inputs are not modified.
func ValidateAll(ctx context.Context, logger logrus.FieldLogger, workers int, orders []models.Order, products []models.Product, ingredients []models.ProductIngredients) error {
	failures, err := CollectFailures(ctx, workers, orders, products, ingredients)
	if err != nil {
		return err
	}
	if len(failures) == 0 {
		return nil
	}
	LogFailures(logger, failures)
	return ErrValidationFailed
}

// LogFailures writes one error entry per violation.
func LogFailures(logger logrus.FieldLogger, failures []Failure) {
	for _, f := range failures {
		for _, v := range f.Violations {
			logger.WithFields(logrus.Fields{
				"entity": f.Entity,
				"key":    f.Key,
				"field":  v.Field,
			}).Error(v.Message)
		}
	}
}

// CollectFailures runs one check per record on a pool of workers and waits for all of them.
// Failures come back in input order: orders, then products, then recipes.
func CollectFailures(ctx context.Context, workers int, orders []models.Order, products []models.Product, ingredients []models.ProductIngredients) ([]Failure, error) {
	checks := make([]recordCheck, 0, len(orders)+len(products)+len(ingredients))
	for _, o := range orders {
		o := o
		checks = append(checks, func() *Failure {
			return failureOf(models.EntityKindOrder, "OrderId: "+strconv.Itoa(o.OrderId), ValidateOrder(o))
		})
	}
	for _, p := range products {
		p := p
		checks = append(checks, func() *Failure {
			return failureOf(models.EntityKindProduct, "ProductId: "+strconv.Itoa(p.ProductId), ValidateProduct(p))
		})
	}
	for _, pi := range ingredients {
		pi := pi
		checks = append(checks, func() *Failure {
			return failureOf(models.EntityKindProductIngredients, "ProductId: "+strconv.Itoa(pi.ProductId), ValidateProductIngredients(pi))
		})
	}

	results, err := runChecks(ctx, workers, checks)
	if err != nil {
		return nil, err
	}

	failures := make([]Failure, 0)
	for _, r := range results {
		if r != nil {
			failures = append(failures, *r)
		}
	}
	return failures, nil
}

// runChecks runs checks on at most workers goroutines and waits for every one of them.
// A check never fails the group; only cancellation of ctx does.
func runChecks(ctx context.Context, workers int, checks []recordCheck) ([]*Failure, error) {
	results := make([]*Failure, len(checks))
	if len(checks) == 0 {
		return results, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, run := range checks {
		i, run := i, run
		if err := ctx.Err(); err != nil {
			g.Wait()
			return nil, err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func failureOf(kind models.EntityKind, key string, violations []Violation) *Failure {
	if len(violations) == 0 {
		return nil
	}
	return &Failure{Entity: kind, Key: key, Violations: violations}
}
