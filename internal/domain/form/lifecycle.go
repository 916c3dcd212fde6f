package form

import (
	"fmt"
	"time"
)

// ControlWindow is the time a recipient has to return a sent form.
const ControlWindow = 7 * 24 * time.Hour

// ApplyStatus moves f to next and stamps the date field owned by next.
//
// Re-applying the current status only rewrites the status value; no date is
// touched. Status dates that are already set are never replaced. The control
// window is the exception: every entry into sent restarts it from now. Any
// state may follow any other state, including a return to created, which
// carries no date.
func ApplyStatus(f *Form, next FormStatus, now time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	if next != f.FormStatus {
		switch next {
		case StatusSent:
			if f.AssignedDate == nil {
				f.AssignedDate = timePtr(now)
			}
			f.ControlDueDate = timePtr(now.Add(ControlWindow))
		case StatusFilled:
			if f.FilledDate == nil {
				f.FilledDate = timePtr(now)
			}
		case StatusControlled:
			if f.ControlledDate == nil {
				f.ControlledDate = timePtr(now)
			}
		}
	}

	f.FormStatus = next
	return nil
}

// PendingFill reports whether the form was sent and its control window is still open.
func (f Form) PendingFill(now time.Time) bool {
	return f.FormStatus == StatusSent && f.ControlDueDate != nil && f.ControlDueDate.After(now)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
