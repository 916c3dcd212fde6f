package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

func TestApplyStatus_SentStampsAssignedAndDue(t *testing.T) {
	f := &Form{FormStatus: StatusCreated, CreatedDate: t0}

	require.NoError(t, ApplyStatus(f, StatusSent, t0))

	assert.Equal(t, StatusSent, f.FormStatus)
	require.NotNil(t, f.AssignedDate)
	require.NotNil(t, f.ControlDueDate)
	assert.Equal(t, t0, *f.AssignedDate)
	assert.Equal(t, f.AssignedDate.Add(7*24*time.Hour), *f.ControlDueDate)
}

func TestApplyStatus_SameStatusTwiceKeepsDates(t *testing.T) {
	cases := []FormStatus{StatusSent, StatusFilled, StatusControlled, StatusCreated}
	for _, status := range cases {
		t.Run(string(status), func(t *testing.T) {
			f := &Form{FormStatus: StatusCreated, CreatedDate: t0}
			require.NoError(t, ApplyStatus(f, status, t0))
			first := *f

			require.NoError(t, ApplyStatus(f, status, t0.Add(48*time.Hour)))

			assert.Equal(t, first, *f)
		})
	}
}

func TestApplyStatus_FullLifecycle(t *testing.T) {
	f := &Form{FormStatus: StatusCreated, CreatedDate: t0}

	require.NoError(t, ApplyStatus(f, StatusSent, t0.Add(time.Hour)))
	require.NoError(t, ApplyStatus(f, StatusFilled, t0.Add(2*time.Hour)))
	require.NoError(t, ApplyStatus(f, StatusControlled, t0.Add(3*time.Hour)))

	assert.Equal(t, StatusControlled, f.FormStatus)
	assert.Equal(t, t0, f.CreatedDate)
	assert.Equal(t, t0.Add(time.Hour), *f.AssignedDate)
	assert.Equal(t, t0.Add(2*time.Hour), *f.FilledDate)
	assert.Equal(t, t0.Add(3*time.Hour), *f.ControlledDate)
}

func TestApplyStatus_ResendKeepsAssignedDateAndRestartsWindow(t *testing.T) {
	f := &Form{FormStatus: StatusCreated, CreatedDate: t0}
	require.NoError(t, ApplyStatus(f, StatusSent, t0))
	require.NoError(t, ApplyStatus(f, StatusFilled, t0.Add(time.Hour)))

	resent := t0.Add(30 * 24 * time.Hour)
	require.NoError(t, ApplyStatus(f, StatusSent, resent))

	assert.Equal(t, t0, *f.AssignedDate)
	assert.Equal(t, resent.Add(ControlWindow), *f.ControlDueDate)
	assert.True(t, f.PendingFill(resent.Add(time.Hour)))
}

func TestApplyStatus_ReapplySentKeepsWindow(t *testing.T) {
	f := &Form{FormStatus: StatusCreated, CreatedDate: t0}
	require.NoError(t, ApplyStatus(f, StatusSent, t0))

	require.NoError(t, ApplyStatus(f, StatusSent, t0.Add(48*time.Hour)))

	assert.Equal(t, t0.Add(ControlWindow), *f.ControlDueDate)
}

func TestApplyStatus_ReopenHasNoDateEffect(t *testing.T) {
	f := &Form{FormStatus: StatusFilled, CreatedDate: t0}

	require.NoError(t, ApplyStatus(f, StatusCreated, t0.Add(time.Hour)))

	assert.Equal(t, StatusCreated, f.FormStatus)
	assert.Nil(t, f.AssignedDate)
	assert.Nil(t, f.FilledDate)
	assert.Nil(t, f.ControlledDate)
	assert.Nil(t, f.ControlDueDate)
}

func TestApplyStatus_SkippingStatesIsAllowed(t *testing.T) {
	f := &Form{FormStatus: StatusCreated, CreatedDate: t0}

	require.NoError(t, ApplyStatus(f, StatusControlled, t0))

	assert.Equal(t, StatusControlled, f.FormStatus)
	assert.Nil(t, f.AssignedDate)
	assert.Equal(t, t0, *f.ControlledDate)
}

func TestApplyStatus_InvalidStatusLeavesFormUntouched(t *testing.T) {
	f := &Form{FormStatus: StatusSent, CreatedDate: t0}
	before := *f

	err := ApplyStatus(f, FormStatus("archived"), t0)

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, before, *f)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("filled")
	require.NoError(t, err)
	assert.Equal(t, StatusFilled, s)

	_, err = ParseStatus(" filled ")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("Filled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPendingFill(t *testing.T) {
	f := Form{FormStatus: StatusCreated}
	require.NoError(t, ApplyStatus(&f, StatusSent, t0))

	assert.True(t, f.PendingFill(t0.Add(6*24*time.Hour)))
	assert.False(t, f.PendingFill(t0.Add(ControlWindow)))

	f.FormStatus = StatusFilled
	assert.False(t, f.PendingFill(t0))
}
