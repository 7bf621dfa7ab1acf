package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/php-ini/thamaneya/internal/domain"
	showsvc "github.com/php-ini/thamaneya/internal/service/show"
)

// ErrCatalogNotEmpty is returned when the catalog already has shows and
// Config.Force is not set.
var ErrCatalogNotEmpty = errors.New("catalog is not empty")

type showService interface {
	ListShows(ctx context.Context, input showsvc.ListShowsInput) (*domain.ShowPage, error)
	CreateShow(ctx context.Context, input showsvc.CreateShowInput) (*domain.Show, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Duration time.Duration
}

// Pipeline loads fixture shows into the catalog through the show service,
// so every record passes the same validation as API input.
type Pipeline struct {
	log   *slog.Logger
	shows showService
	tx    txManager
	cfg   Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, shows showService, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:   log.With("component", "seeder"),
		shows: shows,
		tx:    tx,
		cfg:   cfg,
	}
}

// Run seeds fx. All shows are validated first; inserts then happen in one
// transaction, so a failing record leaves the catalog untouched.
func (p *Pipeline) Run(ctx context.Context, fx *Fixture) (Result, error) {
	start := time.Now()

	inputs, err := p.validate(fx)
	if err != nil {
		return Result{}, err
	}

	if p.cfg.DryRun {
		p.log.Info("dry run: fixture is valid", slog.Int("shows", len(inputs)))
		return Result{Duration: time.Since(start)}, nil
	}

	if !p.cfg.Force {
		page, err := p.shows.ListShows(ctx, showsvc.ListShowsInput{Limit: 1})
		if err != nil {
			return Result{}, fmt.Errorf("check catalog: %w", err)
		}
		if page.Total > 0 {
			return Result{}, fmt.Errorf("%w: %d shows present", ErrCatalogNotEmpty, page.Total)
		}
	}

	var inserted int
	err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i, input := range inputs {
			if _, err := p.shows.CreateShow(txCtx, input); err != nil {
				return fmt.Errorf("show %d (%q): %w", i+1, input.Title, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Inserted: inserted, Duration: time.Since(start)}
	p.log.Info("seeding completed",
		slog.Int("inserted", res.Inserted),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// validate converts every fixture show and collects all failures into one
// ValidationError whose fields are addressed as shows[i].<field>.
func (p *Pipeline) validate(fx *Fixture) ([]showsvc.CreateShowInput, error) {
	inputs := make([]showsvc.CreateShowInput, 0, len(fx.Shows))
	var fields []domain.FieldError

	for i, s := range fx.Shows {
		input, err := s.toInput()
		if err == nil {
			err = input.Validate()
		}
		if err == nil {
			inputs = append(inputs, input)
			continue
		}

		prefix := fmt.Sprintf("shows[%d]", i)
		if fe := domain.FieldErrors(err); fe != nil {
			fields = append(fields, domain.PrefixFields(prefix, fe)...)
		} else {
			fields = append(fields, domain.FieldError{Field: prefix, Message: err.Error()})
		}
	}

	if len(fields) > 0 {
		return nil, fmt.Errorf("invalid fixture: %w", domain.NewValidationErrors(fields))
	}
	return inputs, nil
}
