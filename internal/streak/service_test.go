package streak

import (
	"testing"
	"time"

	util "github.com/quizforge/quizforge/internal/utils"
)

func dateOn(day int) util.Date {
	return util.NewDate(time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC))
}

func TestApplyFirstPass(t *testing.T) {
	s := &Streak{}
	today := dateOn(1)

	if changed := apply(s, true, today); !changed {
		t.Fatal("expected first activity to change the streak")
	}
	if s.CurrentStreak != 1 || s.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", s.CurrentStreak, s.LongestStreak)
	}
	if s.LastActivityDate == nil || !s.LastActivityDate.Equal(today) {
		t.Errorf("last_activity_date = %v, want %v", s.LastActivityDate, today)
	}
}

func TestApplySameDayIdempotent(t *testing.T) {
	s := &Streak{}
	today := dateOn(1)

	apply(s, true, today)
	before := *s

	if changed := apply(s, true, today); changed {
		t.Error("expected same-day update to be a no-op")
	}
	if s.CurrentStreak != before.CurrentStreak || s.LongestStreak != before.LongestStreak {
		t.Errorf("streak changed on same day: %+v -> %+v", before, *s)
	}

	// A same-day failure must not reset either.
	if changed := apply(s, false, today); changed {
		t.Error("expected same-day failed attempt to be a no-op")
	}
}

func TestApplyConsecutiveDays(t *testing.T) {
	s := &Streak{}

	apply(s, true, dateOn(1))
	apply(s, true, dateOn(2))
	apply(s, true, dateOn(3))

	if s.CurrentStreak != 3 || s.LongestStreak != 3 {
		t.Errorf("streak = %d/%d, want 3/3", s.CurrentStreak, s.LongestStreak)
	}
}

func TestApplyNonConsecutivePassResets(t *testing.T) {
	s := &Streak{}

	// Pass on day 1, idle on day 2, pass on day 3.
	apply(s, true, dateOn(1))
	apply(s, true, dateOn(3))

	if s.CurrentStreak != 1 {
		t.Errorf("current_streak = %d, want 1 after a gap", s.CurrentStreak)
	}
	if s.LongestStreak != 1 {
		t.Errorf("longest_streak = %d, want 1", s.LongestStreak)
	}
}

func TestApplyLongestStreakPreserved(t *testing.T) {
	s := &Streak{}

	apply(s, true, dateOn(1))
	apply(s, true, dateOn(2))
	apply(s, true, dateOn(3))
	apply(s, true, dateOn(10))

	if s.CurrentStreak != 1 {
		t.Errorf("current_streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest_streak = %d, want 3", s.LongestStreak)
	}
}

func TestApplyFailures(t *testing.T) {
	t.Run("FailAfterLongGapResets", func(t *testing.T) {
		s := &Streak{}
		apply(s, true, dateOn(1))
		apply(s, false, dateOn(5))

		if s.CurrentStreak != 0 {
			t.Errorf("current_streak = %d, want 0 after failing post-gap", s.CurrentStreak)
		}
	})

	t.Run("FailNextDayKeepsStreak", func(t *testing.T) {
		s := &Streak{}
		apply(s, true, dateOn(1))
		apply(s, false, dateOn(2))

		if s.CurrentStreak != 1 {
			t.Errorf("current_streak = %d, want 1 when failing the next day", s.CurrentStreak)
		}
	})

	t.Run("FailureStillRecordsActivity", func(t *testing.T) {
		s := &Streak{}
		apply(s, false, dateOn(1))

		if s.LastActivityDate == nil || !s.LastActivityDate.Equal(dateOn(1)) {
			t.Errorf("last_activity_date = %v, want %v", s.LastActivityDate, dateOn(1))
		}
	})
}
