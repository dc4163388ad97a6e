package service

import (
	"context"

	"github.com/deppfellow/sweets/internal/errs"
	"github.com/deppfellow/sweets/internal/metrics"
	"github.com/deppfellow/sweets/internal/model/sweet"
	"github.com/rs/zerolog"
)

// SweetRepository is the store the service works against.
// *repository.SweetRepository implements it.
type SweetRepository interface {
	ListSweets(ctx context.Context) ([]sweet.Sweet, error)
	CreateSweet(ctx context.Context, title string, calories int) (*sweet.Sweet, error)
	GetSweetByID(ctx context.Context, id int64) (*sweet.Sweet, bool, error)
	UpdateSweet(ctx context.Context, s sweet.Sweet) (*sweet.Sweet, bool, error)
	DeleteSweet(ctx context.Context, id int64) (bool, error)
}

type SweetService struct {
	repo    SweetRepository
	metrics *metrics.Metrics
}

// NewSweetService builds the service. m may be nil.
func NewSweetService(repo SweetRepository, m *metrics.Metrics) *SweetService {
	return &SweetService{
		repo:    repo,
		metrics: m,
	}
}

// ListSweets never returns a nil slice, so an empty store renders as [].
func (s *SweetService) ListSweets(ctx context.Context) ([]sweet.Sweet, error) {
	sweets, err := s.repo.ListSweets(ctx)
	if err != nil {
		return nil, err
	}
	if sweets == nil {
		sweets = []sweet.Sweet{}
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(sweets)).Msg("listed sweets")
	return sweets, nil
}

// CreateSweet persists an already validated payload.
func (s *SweetService) CreateSweet(ctx context.Context, payload sweet.Payload) (*sweet.Sweet, error) {
	title, calories := payload.Fields()

	created, err := s.repo.CreateSweet(ctx, title, calories)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordSweetMutation(metrics.OperationCreate)
	zerolog.Ctx(ctx).Info().
		Int64("sweet_id", created.ID).
		Str("title", created.Title).
		Msg("sweet created")

	return created, nil
}

func (s *SweetService) GetSweet(ctx context.Context, id int64) (*sweet.Sweet, error) {
	found, ok, err := s.repo.GetSweetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewSweetNotFoundError(id)
	}

	return found, nil
}

// UpdateSweet looks the sweet up, overwrites title and calories and
// persists it. The payload must have been validated by the caller.
func (s *SweetService) UpdateSweet(ctx context.Context, id int64, payload sweet.Payload) (*sweet.Sweet, error) {
	current, err := s.GetSweet(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title, current.Calories = payload.Fields()

	updated, ok, err := s.repo.UpdateSweet(ctx, *current)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewSweetNotFoundError(id)
	}

	s.metrics.RecordSweetMutation(metrics.OperationUpdate)
	zerolog.Ctx(ctx).Info().Int64("sweet_id", id).Msg("sweet updated")

	return updated, nil
}

func (s *SweetService) DeleteSweet(ctx context.Context, id int64) error {
	if _, err := s.GetSweet(ctx, id); err != nil {
		return err
	}

	ok, err := s.repo.DeleteSweet(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewSweetNotFoundError(id)
	}

	s.metrics.RecordSweetMutation(metrics.OperationDelete)
	zerolog.Ctx(ctx).Info().Int64("sweet_id", id).Msg("sweet deleted")

	return nil
}
