package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradplan/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Inputs are the external collaborators the planner reads at start-up.
// Catalog is nil when no catalog file exists yet.
type Inputs struct {
	Catalog   domain.Catalog
	Completed []domain.CompletedSemester
}

// LoadCatalog reads, validates and converts a catalog file. A missing file
// yields a nil catalog and no error.
func LoadCatalog(path string) (domain.Catalog, error) {
	schema, err := LoadCatalogSchema(path)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, nil
	}
	if errs := ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s: %w", path, errors.Join(errs...))
	}
	return ConvertCatalog(schema), nil
}

// LoadCompleted reads, validates and converts a completed-semesters file.
// A missing or empty file yields no semesters.
func LoadCompleted(path string) ([]domain.CompletedSemester, error) {
	schema, err := LoadCompletedSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateCompletedSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("completed semesters %s: %w", path, errors.Join(errs...))
	}
	return ConvertCompleted(schema), nil
}

// LoadInputs reads both input files concurrently.
func LoadInputs(ctx context.Context, catalogPath, completedPath string) (Inputs, error) {
	var in Inputs
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		catalog, err := LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		in.Catalog = catalog
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		completed, err := LoadCompleted(completedPath)
		if err != nil {
			return err
		}
		in.Completed = completed
		return nil
	})

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}
