package events

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Event, error) {
	return s.repo.Create(ctx, params)
}

// RSVP records an attendance by decrementing the event's remaining capacity.
// There is no per-user deduplication and no non-negative floor.
func (s *Service) RSVP(ctx context.Context, id int64) (*Event, error) {
	return s.repo.DecrementCapacity(ctx, id)
}
