package events

import "context"

// Event mirrors the event relation. Date stays a string: the store accepts
// whatever the client sent, and no range or format rules apply on create.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"event_name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int32  `json:"capacity"`
}

type CreateParams struct {
	Name        string
	Description string
	Date        string
	Location    string
	Capacity    int32
}

type Repository interface {
	// List returns every event row, unfiltered and unpaginated.
	List(ctx context.Context) ([]Event, error)
	// Create inserts a row and returns it with the generated identifier.
	Create(ctx context.Context, params CreateParams) (*Event, error)
	// DecrementCapacity atomically lowers capacity by one and returns the
	// updated row, or ErrNotFound when the id matches nothing. There is no
	// floor: capacity may go negative.
	DecrementCapacity(ctx context.Context, id int64) (*Event, error)
}
