package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAllScheduleDays_DedupAndChronological(t *testing.T) {
	t.Parallel()

	schedules := []AnimalSchedule{
		{Entries: []Entry{
			{Days: []string{"12/31/2025", "01/01/2026", "01/02/2026"}},
			{Days: []string{"02/01/2025"}},
		}},
		{Entries: []Entry{
			{Days: []string{"01/01/2026", "10/05/2025"}},
		}},
	}

	// Como texto "01/01/2026" quedaría antes que "02/01/2025".
	want := []string{"02/01/2025", "10/05/2025", "12/31/2025", "01/01/2026", "01/02/2026"}
	if diff := cmp.Diff(want, AllScheduleDays(schedules)); diff != "" {
		t.Fatalf("AllScheduleDays mismatch (-want +got):\n%s", diff)
	}
}

func TestAllScheduleDays_Empty(t *testing.T) {
	t.Parallel()

	got := AllScheduleDays(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDateRun_CrossesMonthAndYear(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	want := []string{"12/31/2025", "01/01/2026", "01/02/2026"}
	if diff := cmp.Diff(want, dateRun(today, 1, 3)); diff != "" {
		t.Fatalf("dateRun mismatch (-want +got):\n%s", diff)
	}
	if got := dateRun(today, 0, 0); got != nil {
		t.Fatalf("expected nil for zero days, got %v", got)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	back, err := ParseDate(FormatDate(d), time.UTC)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
	if _, err := ParseDate("2026-07-04", time.UTC); err == nil {
		t.Fatalf("expected error for ISO date")
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"", StatusTodo, true},
		{"TODO", StatusTodo, true},
		{" delay ", StatusDelay, true},
		{"done", StatusDone, true},
		{"skip", StatusSkip, true},
		{"bathed", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseStatus(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
