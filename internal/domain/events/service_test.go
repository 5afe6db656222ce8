package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	listFn      func() ([]Event, error)
	createFn    func(params CreateParams) (*Event, error)
	decrementFn func(id int64) (*Event, error)
}

func (s stubRepo) List(_ context.Context) ([]Event, error) {
	return s.listFn()
}

func (s stubRepo) Create(_ context.Context, params CreateParams) (*Event, error) {
	return s.createFn(params)
}

func (s stubRepo) DecrementCapacity(_ context.Context, id int64) (*Event, error) {
	return s.decrementFn(id)
}

func TestServiceList(t *testing.T) {
	repo := stubRepo{
		listFn: func() ([]Event, error) {
			return []Event{{ID: 1, Name: "Jazz Night"}, {ID: 2, Name: "Book Club"}}, nil
		},
	}

	items, err := NewService(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Jazz Night", items[0].Name)
}

func TestServiceCreateAcceptsNegativeCapacity(t *testing.T) {
	repo := stubRepo{
		createFn: func(params CreateParams) (*Event, error) {
			require.Equal(t, int32(-5), params.Capacity)
			return &Event{ID: 3, Name: params.Name, Capacity: params.Capacity}, nil
		},
	}

	item, err := NewService(repo).Create(context.Background(), CreateParams{
		Name:     "Overbooked",
		Capacity: -5,
	})
	require.NoError(t, err)
	require.Equal(t, int32(-5), item.Capacity)
}

func TestServiceRSVPDecrementsBelowZero(t *testing.T) {
	repo := stubRepo{
		decrementFn: func(id int64) (*Event, error) {
			require.Equal(t, int64(9), id)
			// Capacity was 0; the store decrements without a floor.
			return &Event{ID: 9, Capacity: -1}, nil
		},
	}

	item, err := NewService(repo).RSVP(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, int32(-1), item.Capacity)
}

func TestServiceRSVPNotFound(t *testing.T) {
	repo := stubRepo{
		decrementFn: func(int64) (*Event, error) {
			return nil, ErrNotFound
		},
	}

	_, err := NewService(repo).RSVP(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceRSVPStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := stubRepo{
		decrementFn: func(int64) (*Event, error) {
			return nil, storeErr
		},
	}

	_, err := NewService(repo).RSVP(context.Background(), 1)
	require.ErrorIs(t, err, storeErr)
}
