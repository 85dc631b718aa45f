package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadavclinic/appointment-app/models"
)

func newTestWizard(st *fakeStore, n *fakeNotifier) *Wizard {
	return NewWizard(NewSessionStore(time.Minute), newTestCoordinator(st, n), zerolog.Nop())
}

func TestWizardHappyPath(t *testing.T) {
	st := &fakeStore{insertFn: func(appt *models.Appointment) (string, error) {
		return "w-1", nil
	}}
	n := &fakeNotifier{}
	w := newTestWizard(st, n)

	session, err := w.Open("Dr. Jadav Apexa")
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSlot, session.Snapshot().State)

	_, err = w.SelectSlot(session.ID, futureDate(t), "10:00")
	require.NoError(t, err)
	assert.Equal(t, StateEnteringDetails, session.Snapshot().State)

	_, err = w.EnterDetails(session.ID, "Asha Patel", "9876543210", "Fever", "")
	require.NoError(t, err)
	assert.Equal(t, StateReviewing, session.Snapshot().State)

	_, result, err := w.Confirm(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, result.Success)

	view := session.Snapshot()
	assert.Equal(t, StateCompleted, view.State)
	assert.Equal(t, "w-1", view.AppointmentID)
	assert.Empty(t, view.NotificationError)
}

func TestWizardRejectsUnknownDoctor(t *testing.T) {
	w := newTestWizard(&fakeStore{}, &fakeNotifier{})

	_, err := w.Open("Dr. Nobody")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "doctor", vErr.Field)
}

func TestWizardStepGuards(t *testing.T) {
	w := newTestWizard(&fakeStore{}, &fakeNotifier{})
	session, err := w.Open("Dr. Jadav Apexa")
	require.NoError(t, err)

	// Details before a slot is picked.
	_, err = w.EnterDetails(session.ID, "X", "555", "Fever", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Confirm straight from slot selection.
	_, _, err = w.Confirm(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Invalid slot options never advance the dialog.
	_, err = w.SelectSlot(session.ID, "2020-01-01", "10:00")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	_, err = w.SelectSlot(session.ID, futureDate(t), "10:17")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, StateSelectingSlot, session.Snapshot().State)
}

func TestWizardBackNavigationKeepsDraft(t *testing.T) {
	w := newTestWizard(&fakeStore{}, &fakeNotifier{})
	session, err := w.Open("Dr. Jadav Pruthaviraj")
	require.NoError(t, err)

	date := futureDate(t)
	_, err = w.SelectSlot(session.ID, date, "14:30")
	require.NoError(t, err)
	_, err = w.EnterDetails(session.ID, "Ravi", "555", "Cough", "notes")
	require.NoError(t, err)

	_, err = w.Back(session.ID)
	require.NoError(t, err)
	view := session.Snapshot()
	assert.Equal(t, StateEnteringDetails, view.State)
	assert.Equal(t, "Ravi", view.Draft.PatientName, "back navigation retains fields")

	_, err = w.Back(session.ID)
	require.NoError(t, err)
	view = session.Snapshot()
	assert.Equal(t, StateSelectingSlot, view.State)
	assert.Equal(t, date, view.Draft.Date)
	assert.Equal(t, "14:30", view.Draft.Time)

	// No step before slot selection.
	_, err = w.Back(session.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWizardFailedSubmissionKeepsDraftAndAllowsRetry(t *testing.T) {
	attempt := 0
	st := &fakeStore{insertFn: func(appt *models.Appointment) (string, error) {
		attempt++
		if attempt == 1 {
			return "", errors.New("store unreachable")
		}
		return "retry-1", nil
	}}
	w := newTestWizard(st, &fakeNotifier{})

	session, err := w.Open("Dr. Jadav Apexa")
	require.NoError(t, err)
	_, err = w.SelectSlot(session.ID, futureDate(t), "09:00")
	require.NoError(t, err)
	_, err = w.EnterDetails(session.ID, "Asha", "555", "Injury", "")
	require.NoError(t, err)

	_, result, err := w.Confirm(context.Background(), session.ID)
	require.NoError(t, err)
	require.False(t, result.Success)

	view := session.Snapshot()
	assert.Equal(t, StateFailed, view.State)
	assert.Equal(t, "Asha", view.Draft.PatientName, "draft survives a failed submission")

	_, result, err = w.Confirm(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "retry-1", result.AppointmentID)
	assert.Equal(t, StateCompleted, session.Snapshot().State)
}

func TestWizardRejectsConcurrentConfirm(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	st := &fakeStore{insertFn: func(appt *models.Appointment) (string, error) {
		close(entered)
		<-release
		return "slow-1", nil
	}}
	w := newTestWizard(st, &fakeNotifier{})

	session, err := w.Open("Dr. Jadav Apexa")
	require.NoError(t, err)
	_, err = w.SelectSlot(session.ID, futureDate(t), "12:00")
	require.NoError(t, err)
	_, err = w.EnterDetails(session.ID, "X", "555", "Fever", "")
	require.NoError(t, err)

	done := make(chan Result, 1)
	go func() {
		_, result, _ := w.Confirm(context.Background(), session.ID)
		done <- result
	}()

	<-entered
	_, _, err = w.Confirm(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrSubmissionInFlight, "double-click must not start a second transaction")

	close(release)
	result := <-done
	require.True(t, result.Success)
	assert.Equal(t, 1, st.insertCalls)
}

func TestWizardCloseDiscardsSession(t *testing.T) {
	w := newTestWizard(&fakeStore{}, &fakeNotifier{})
	session, err := w.Open("Dr. Jadav Apexa")
	require.NoError(t, err)

	w.Close(session.ID)

	_, err = w.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreCleanup(t *testing.T) {
	ss := NewSessionStore(10 * time.Millisecond)
	stale := ss.Create("Dr. Jadav Apexa")
	fresh := ss.Create("Dr. Jadav Pruthaviraj")

	stale.mu.Lock()
	stale.UpdatedAt = time.Now().Add(-time.Minute)
	stale.mu.Unlock()

	removed := ss.Cleanup()
	assert.Equal(t, 1, removed)
	assert.Nil(t, ss.Get(stale.ID))
	assert.NotNil(t, ss.Get(fresh.ID))
}
