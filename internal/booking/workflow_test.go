package booking

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillshare/skilladmin/internal/collection"
	"github.com/skillshare/skilladmin/internal/logging"
	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/shared"
)

type fakeBookingOps struct {
	listResult []models.Booking
}

func (f *fakeBookingOps) List(ctx context.Context) ([]models.Booking, error) {
	return f.listResult, nil
}
func (f *fakeBookingOps) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	return b, nil
}
func (f *fakeBookingOps) Update(ctx context.Context, id string, b models.Booking) (models.Booking, error) {
	return b, nil
}
func (f *fakeBookingOps) Remove(ctx context.Context, id string) error { return nil }

type fakeTransitioner struct {
	result models.Booking
	err    error
	calls  int
}

func (f *fakeTransitioner) TransitionBooking(ctx context.Context, id, action string) (models.Booking, error) {
	f.calls++
	return f.result, f.err
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func newWorkflow(t *testing.T, bookings []models.Booking, api *fakeTransitioner) *Workflow {
	t.Helper()
	store := collection.NewStore[models.Booking](&fakeBookingOps{listResult: bookings}, discardLogger())
	require.NoError(t, store.Load(context.Background()))
	return NewWorkflow(store, api, discardLogger())
}

func pendingBooking(id string) models.Booking {
	return models.Booking{ID: id, Status: models.StatusPending, Student: models.Party{Name: "Ann"}}
}

func TestRequestTransition_ApprovePending(t *testing.T) {
	api := &fakeTransitioner{result: models.Booking{ID: "b1", Status: models.StatusApproved}}
	w := newWorkflow(t, []models.Booking{pendingBooking("b1"), pendingBooking("b2")}, api)

	updated, err := w.RequestTransition(context.Background(), "b1", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, 1, api.calls)

	got, ok := w.Get("b1")
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, got.Status)

	other, ok := w.Get("b2")
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, other.Status, "only the targeted booking changes")
}

func TestRequestTransition_ServerStatusIsAuthoritative(t *testing.T) {
	// Client asks for approved, server answers rejected; the local copy
	// must follow the server.
	api := &fakeTransitioner{result: models.Booking{ID: "b1", Status: models.StatusRejected}}
	w := newWorkflow(t, []models.Booking{pendingBooking("b1")}, api)

	updated, err := w.RequestTransition(context.Background(), "b1", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)

	got, _ := w.Get("b1")
	assert.Equal(t, models.StatusRejected, got.Status)
}

func TestRequestTransition_UnknownIDIsNotFound(t *testing.T) {
	api := &fakeTransitioner{}
	w := newWorkflow(t, nil, api)

	_, err := w.RequestTransition(context.Background(), "ghost", models.StatusApproved)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Zero(t, api.calls, "no network call for unknown id")
}

func TestRequestTransition_TerminalStatusNeverCallsNetwork(t *testing.T) {
	for _, status := range []models.Status{models.StatusApproved, models.StatusRejected} {
		api := &fakeTransitioner{}
		w := newWorkflow(t, []models.Booking{{ID: "b1", Status: status}}, api)

		_, err := w.RequestTransition(context.Background(), "b1", models.StatusApproved)
		assert.ErrorIs(t, err, shared.ErrIllegalTransition)
		assert.Zero(t, api.calls)

		got, _ := w.Get("b1")
		assert.Equal(t, status, got.Status, "status unchanged")
	}
}

func TestRequestTransition_IllegalTargetNeverCallsNetwork(t *testing.T) {
	api := &fakeTransitioner{}
	w := newWorkflow(t, []models.Booking{pendingBooking("b1")}, api)

	_, err := w.RequestTransition(context.Background(), "b1", models.StatusPending)
	assert.ErrorIs(t, err, shared.ErrIllegalTransition)
	assert.Zero(t, api.calls)
}

type slowTransitioner struct {
	mu     sync.Mutex
	delay  time.Duration
	result models.Booking
	calls  int
}

func (f *slowTransitioner) TransitionBooking(ctx context.Context, id, action string) (models.Booking, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	time.Sleep(f.delay)
	return f.result, nil
}

func TestRequestTransition_ConcurrentSameIDSequenced(t *testing.T) {
	api := &slowTransitioner{
		delay:  100 * time.Millisecond,
		result: models.Booking{ID: "b1", Status: models.StatusApproved},
	}
	store := collection.NewStore[models.Booking](
		&fakeBookingOps{listResult: []models.Booking{pendingBooking("b1")}}, discardLogger())
	require.NoError(t, store.Load(context.Background()))
	w := NewWorkflow(store, api, discardLogger())

	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := w.RequestTransition(context.Background(), "b1", models.StatusApproved)
			errs <- err
		}()
	}
	first, second := <-errs, <-errs

	// One caller wins and applies the terminal status; the other must be
	// rejected by the local guard without a second network call.
	assert.Equal(t, 1, api.calls)
	if first == nil {
		assert.ErrorIs(t, second, shared.ErrIllegalTransition)
	} else {
		assert.ErrorIs(t, first, shared.ErrIllegalTransition)
		assert.NoError(t, second)
	}

	got, _ := w.Get("b1")
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestRequestTransition_BackendFailureLeavesCollectionUnchanged(t *testing.T) {
	api := &fakeTransitioner{err: errors.New("boom")}
	w := newWorkflow(t, []models.Booking{pendingBooking("b1")}, api)

	_, err := w.RequestTransition(context.Background(), "b1", models.StatusApproved)
	require.Error(t, err)

	got, _ := w.Get("b1")
	assert.Equal(t, models.StatusPending, got.Status)
}
