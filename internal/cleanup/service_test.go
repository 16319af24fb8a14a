package cleanup

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	got := retentionCutoff(now, 7)
	want := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("retentionCutoff() = %v, want %v", got, want)
	}
}

func TestPartition(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("SkipsReferenced", func(t *testing.T) {
		deletable, skipped := partition(
			[]uuid.UUID{a, b, c},
			map[uuid.UUID]bool{b: true},
		)
		if skipped != 1 {
			t.Errorf("skipped = %d, want 1", skipped)
		}
		if len(deletable) != 2 {
			t.Fatalf("deletable = %d, want 2", len(deletable))
		}
		for _, id := range deletable {
			if id == b {
				t.Error("referenced question must not be deletable")
			}
		}
	})

	t.Run("NothingReferenced", func(t *testing.T) {
		deletable, skipped := partition([]uuid.UUID{a, b}, map[uuid.UUID]bool{})
		if skipped != 0 || len(deletable) != 2 {
			t.Errorf("got %d deletable, %d skipped", len(deletable), skipped)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		deletable, skipped := partition(nil, nil)
		if skipped != 0 || len(deletable) != 0 {
			t.Errorf("got %d deletable, %d skipped", len(deletable), skipped)
		}
	})
}

func TestRetentionDaysFromEnv(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv("AI_RETENTION_DAYS", "")
		if got := retentionDaysFromEnv(); got != defaultRetentionDays {
			t.Errorf("got %d, want %d", got, defaultRetentionDays)
		}
	})

	t.Run("Override", func(t *testing.T) {
		t.Setenv("AI_RETENTION_DAYS", "30")
		if got := retentionDaysFromEnv(); got != 30 {
			t.Errorf("got %d, want 30", got)
		}
	})

	t.Run("InvalidFallsBack", func(t *testing.T) {
		t.Setenv("AI_RETENTION_DAYS", "-2")
		if got := retentionDaysFromEnv(); got != defaultRetentionDays {
			t.Errorf("got %d, want %d", got, defaultRetentionDays)
		}
	})
}
