package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotFor(staffID uuid.UUID, day, start, end string) TimetableSlot {
	return TimetableSlot{
		StaffID:   staffID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestClockMinutes(t *testing.T) {
	m, err := ClockMinutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ClockMinutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = ClockMinutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, m)

	_, err = ClockMinutes("9:30am")
	assert.Error(t, err)

	_, err = ClockMinutes("25:00")
	assert.Error(t, err)
}

func TestOverlapsWith(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()

	tests := []struct {
		name      string
		existing  TimetableSlot
		candidate TimetableSlot
		want      bool
	}{
		{
			name:      "partial overlap at the front",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffA, "Monday", "09:30", "10:30"),
			want:      true,
		},
		{
			name:      "partial overlap at the back",
			existing:  slotFor(staffA, "Monday", "09:30", "10:30"),
			candidate: slotFor(staffA, "Monday", "09:00", "10:00"),
			want:      true,
		},
		{
			name:      "candidate fully inside existing",
			existing:  slotFor(staffA, "Monday", "09:00", "12:00"),
			candidate: slotFor(staffA, "Monday", "10:00", "11:00"),
			want:      true,
		},
		{
			name:      "candidate fully contains existing",
			existing:  slotFor(staffA, "Monday", "10:00", "11:00"),
			candidate: slotFor(staffA, "Monday", "09:00", "12:00"),
			want:      true,
		},
		{
			name:      "identical windows",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffA, "Monday", "09:00", "10:00"),
			want:      true,
		},
		{
			name:      "back-to-back, candidate after",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffA, "Monday", "10:00", "11:00"),
			want:      false,
		},
		{
			name:      "back-to-back, candidate before",
			existing:  slotFor(staffA, "Monday", "10:00", "11:00"),
			candidate: slotFor(staffA, "Monday", "09:00", "10:00"),
			want:      false,
		},
		{
			name:      "same window, different staff",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffB, "Monday", "09:00", "10:00"),
			want:      false,
		},
		{
			name:      "same window, different day",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffA, "Tuesday", "09:00", "10:00"),
			want:      false,
		},
		{
			name:      "disjoint windows",
			existing:  slotFor(staffA, "Monday", "09:00", "10:00"),
			candidate: slotFor(staffA, "Monday", "14:00", "15:00"),
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.OverlapsWith(tt.existing))
		})
	}
}

// Two proposals arriving for an empty staff/day, admitted one at a time as
// the staff-row lock serializes them: the first sees an empty set and passes;
// the second must observe the first's committed slot and be rejected.
func TestSerializedProposalsDetectOverlap(t *testing.T) {
	staff := uuid.New()
	var existing []TimetableSlot

	first := slotFor(staff, "Monday", "09:00", "10:00")
	require.Nil(t, FindConflictingSlot(existing, first))
	existing = append(existing, first)

	second := slotFor(staff, "Monday", "09:30", "10:30")
	hit := FindConflictingSlot(existing, second)
	require.NotNil(t, hit)
	assert.Equal(t, "09:00", hit.StartTime)
	assert.Equal(t, "10:00", hit.EndTime)
}

func TestFindConflictingSlot(t *testing.T) {
	staffA := uuid.New()

	existing := []TimetableSlot{
		slotFor(staffA, "Monday", "09:00", "10:00"),
		slotFor(staffA, "Monday", "11:00", "12:00"),
	}

	hit := FindConflictingSlot(existing, slotFor(staffA, "Monday", "11:30", "12:30"))
	require.NotNil(t, hit)
	assert.Equal(t, "11:00", hit.StartTime)

	hit = FindConflictingSlot(existing, slotFor(staffA, "Monday", "10:00", "11:00"))
	assert.Nil(t, hit)

	hit = FindConflictingSlot(nil, slotFor(staffA, "Monday", "09:00", "10:00"))
	assert.Nil(t, hit)
}
