package animal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"keeps day", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"clamps to february", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to thirty days", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"crosses year", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"twelve months", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"zero months", date(2025, time.June, 5), 0, date(2025, time.June, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonths(tc.in, tc.n))
		})
	}
}

func TestIsFormDue_DisabledPeriod(t *testing.T) {
	for _, period := range []int{0, -1} {
		a := Animal{FormGenerationPeriod: period}
		assert.False(t, a.IsFormDue(date(2030, time.January, 1)))
	}
}

func TestIsFormDue_NoAnchorIsDue(t *testing.T) {
	a := Animal{FormGenerationPeriod: 2}
	assert.True(t, a.IsFormDue(date(2025, time.January, 1)))
}

func TestIsFormDue_CalendarMonths(t *testing.T) {
	sent := date(2025, time.January, 31)
	a := Animal{FormGenerationPeriod: 1, LastFormSentDate: &sent}

	assert.False(t, a.IsFormDue(date(2025, time.February, 27)))
	assert.True(t, a.IsFormDue(date(2025, time.February, 28)))
	assert.True(t, a.IsFormDue(date(2025, time.March, 1)))
}

func TestIsFormDue_LeapYear(t *testing.T) {
	sent := date(2024, time.January, 31)
	a := Animal{FormGenerationPeriod: 1, LastFormSentDate: &sent}

	assert.False(t, a.IsFormDue(date(2024, time.February, 28)))
	assert.True(t, a.IsFormDue(date(2024, time.February, 29)))
}

func TestNextFormDue(t *testing.T) {
	a := Animal{FormGenerationPeriod: 3}
	_, ok := a.NextFormDue()
	assert.False(t, ok)

	sent := date(2025, time.May, 31)
	a.LastFormSentDate = &sent
	next, ok := a.NextFormDue()
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.August, 31), next)
}
