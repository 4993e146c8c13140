package capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/stretchr/testify/assert"
)

func newGuardWithCount(count int64, err error) (*Guard, *repository.RegistrationMock) {
	repo := &repository.RegistrationMock{
		CountRegistrationsByEventFunc: func(ctx context.Context, eventID int64) (int64, error) {
			return count, err
		},
	}
	return NewGuard(repo), repo
}

func TestGuard_Remaining(t *testing.T) {
	g, repo := newGuardWithCount(7, nil)

	remaining, err := g.Remaining(context.Background(), model.Event{ID: 10, Capacity: 10})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), remaining)

	assert.Equal(t, 1, len(repo.CountRegistrationsByEventCalls()))
	assert.Equal(t, int64(10), repo.CountRegistrationsByEventCalls()[0].EventID)
}

func TestGuard_Remaining__Oversubscribed_Is_Zero(t *testing.T) {
	g, _ := newGuardWithCount(12, nil)

	remaining, err := g.Remaining(context.Background(), model.Event{ID: 10, Capacity: 10})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), remaining)
}

func TestGuard_Check(t *testing.T) {
	g, _ := newGuardWithCount(7, nil)
	event := model.Event{ID: 10, Capacity: 10}

	remaining, err := g.Check(context.Background(), event, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), remaining)

	_, err = g.Check(context.Background(), event, 4)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestGuard_Check__Store_Error(t *testing.T) {
	g, _ := newGuardWithCount(0, errors.New("connection refused"))

	_, err := g.Check(context.Background(), model.Event{ID: 10, Capacity: 10}, 1)
	assert.Equal(t, errors.New("connection refused"), err)
}
