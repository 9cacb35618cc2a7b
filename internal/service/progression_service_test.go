package service

import (
	"testing"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"
)

func newTestProgression() *ProgressionService {
	return NewProgressionService(repository.NewMemoryStateRepository())
}

func TestComputeLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		xp       int
		want     string
		wantNext string
	}{
		{name: "zero", xp: 0, want: "Seedling", wantNext: "Scholar"},
		{name: "just_below_scholar", xp: 49, want: "Seedling", wantNext: "Scholar"},
		{name: "scholar_boundary", xp: 50, want: "Scholar", wantNext: "Thinker"},
		{name: "thinker", xp: 150, want: "Thinker", wantNext: "Explorer"},
		{name: "explorer", xp: 300, want: "Explorer", wantNext: "Master"},
		{name: "master", xp: 999, want: "Master", wantNext: "Legend"},
		{name: "legend_boundary", xp: 1000, want: "Legend", wantNext: ""},
		{name: "beyond_top", xp: 50000, want: "Legend", wantNext: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info := ComputeLevel(tc.xp)
			if info.Level.Name != tc.want {
				t.Fatalf("level got=%s want=%s", info.Level.Name, tc.want)
			}
			if tc.wantNext == "" {
				if info.NextLevel != nil {
					t.Fatalf("next level got=%v want=nil", info.NextLevel)
				}
				if info.ProgressPercent != 100 {
					t.Fatalf("top tier progress got=%v want=100", info.ProgressPercent)
				}
				return
			}
			if info.NextLevel == nil || info.NextLevel.Name != tc.wantNext {
				t.Fatalf("next level got=%v want=%s", info.NextLevel, tc.wantNext)
			}
			if info.ProgressPercent < 0 || info.ProgressPercent > 100 {
				t.Fatalf("progress out of range: %v", info.ProgressPercent)
			}
		})
	}
}

func TestComputeLevelProgressAtMidpoint(t *testing.T) {
	t.Parallel()

	// Scholar 区间 50-150，xp=100 正好一半
	info := ComputeLevel(100)
	if info.ProgressPercent != 50 {
		t.Fatalf("progress got=%v want=50", info.ProgressPercent)
	}
}

func TestEarnedBadgesMonotonic(t *testing.T) {
	t.Parallel()

	prev := 0
	for _, xp := range []int{0, 9, 10, 50, 80, 100, 150, 200, 10000} {
		got := len(EarnedBadges(xp))
		if got < prev {
			t.Fatalf("badge count shrank at xp=%d: got=%d prev=%d", xp, got, prev)
		}
		prev = got
	}

	if got := len(EarnedBadges(0)); got != 0 {
		t.Fatalf("badges at 0 xp got=%d want=0", got)
	}
	if got := len(EarnedBadges(200)); got != 6 {
		t.Fatalf("badges at 200 xp got=%d want=6", got)
	}
}

func TestAward(t *testing.T) {
	t.Parallel()

	s := newTestProgression()

	xp, err := s.Award("u1", XPEventStudying)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if xp != 25 {
		t.Fatalf("xp got=%d want=25", xp)
	}

	xp, err = s.Award("u1", XPEventSaving)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if xp != 35 {
		t.Fatalf("xp got=%d want=35", xp)
	}

	if _, err := s.Award("u1", XPEventKind("bogus")); err != util.ErrUnknownXPEvent {
		t.Fatalf("unknown kind err got=%v want=%v", err, util.ErrUnknownXPEvent)
	}

	// 不同用户互不影响
	other, err := s.XP("u2")
	if err != nil {
		t.Fatalf("xp: %v", err)
	}
	if other != 0 {
		t.Fatalf("other user xp got=%d want=0", other)
	}
}

func TestAwardAmountClampsNegative(t *testing.T) {
	t.Parallel()

	s := newTestProgression()
	xp, err := s.AwardAmount("u1", XPEventQuizAnswered, -50)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if xp != 0 {
		t.Fatalf("xp got=%d want=0", xp)
	}
}

func TestCheckin(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time {
		d, err := time.Parse(model.DateLayout, s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return d
	}

	t.Run("first_checkin", func(t *testing.T) {
		t.Parallel()
		s := newTestProgression()
		got, err := s.Checkin("u1", day("2026-03-10"))
		if err != nil {
			t.Fatalf("checkin: %v", err)
		}
		if got != 1 {
			t.Fatalf("streak got=%d want=1", got)
		}
	})

	t.Run("same_day_keeps_streak", func(t *testing.T) {
		t.Parallel()
		s := newTestProgression()
		s.Checkin("u1", day("2026-03-09"))
		s.Checkin("u1", day("2026-03-10"))
		got, err := s.Checkin("u1", day("2026-03-10"))
		if err != nil {
			t.Fatalf("checkin: %v", err)
		}
		if got != 2 {
			t.Fatalf("streak got=%d want=2", got)
		}
	})

	t.Run("next_day_increments", func(t *testing.T) {
		t.Parallel()
		s := newTestProgression()
		s.Checkin("u1", day("2026-03-09"))
		s.Checkin("u1", day("2026-03-10"))
		got, err := s.Checkin("u1", day("2026-03-11"))
		if err != nil {
			t.Fatalf("checkin: %v", err)
		}
		if got != 3 {
			t.Fatalf("streak got=%d want=3", got)
		}
	})

	t.Run("gap_resets", func(t *testing.T) {
		t.Parallel()
		s := newTestProgression()
		s.Checkin("u1", day("2026-03-09"))
		s.Checkin("u1", day("2026-03-10"))
		got, err := s.Checkin("u1", day("2026-03-15"))
		if err != nil {
			t.Fatalf("checkin: %v", err)
		}
		if got != 1 {
			t.Fatalf("streak got=%d want=1", got)
		}
	})

	t.Run("persists_last_active", func(t *testing.T) {
		t.Parallel()
		s := newTestProgression()
		s.Checkin("u1", day("2026-03-10"))
		val, ok, err := s.States.Get("u1", model.StateKeyLastActive)
		if err != nil || !ok {
			t.Fatalf("last_active missing: ok=%v err=%v", ok, err)
		}
		if val != "2026-03-10" {
			t.Fatalf("last_active got=%s want=2026-03-10", val)
		}
	})
}

func TestWeeklyMinutes(t *testing.T) {
	t.Parallel()

	s := newTestProgression()

	minutes, err := s.WeeklyMinutes("u1")
	if err != nil {
		t.Fatalf("weekly minutes: %v", err)
	}
	if len(minutes) != 7 {
		t.Fatalf("slots got=%d want=7", len(minutes))
	}

	if err := s.AddStudyMinutes("u1", 25); err != nil {
		t.Fatalf("add minutes: %v", err)
	}
	if err := s.AddStudyMinutes("u1", 25); err != nil {
		t.Fatalf("add minutes: %v", err)
	}

	minutes, err = s.WeeklyMinutes("u1")
	if err != nil {
		t.Fatalf("weekly minutes: %v", err)
	}
	if minutes[6] != 50 {
		t.Fatalf("today slot got=%d want=50", minutes[6])
	}
	for i := 0; i < 6; i++ {
		if minutes[i] != 0 {
			t.Fatalf("slot %d got=%d want=0", i, minutes[i])
		}
	}
}

func TestWeeklyMinutesCorruptStateResets(t *testing.T) {
	t.Parallel()

	s := newTestProgression()
	if err := s.States.Set("u1", model.StateKeyWeeklyMinutes, "not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	minutes, err := s.WeeklyMinutes("u1")
	if err != nil {
		t.Fatalf("weekly minutes: %v", err)
	}
	if len(minutes) != 7 {
		t.Fatalf("slots got=%d want=7", len(minutes))
	}
	for i, m := range minutes {
		if m != 0 {
			t.Fatalf("slot %d got=%d want=0", i, m)
		}
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestProgression()
	s.Award("u1", XPEventStudying)
	s.Award("u1", XPEventStudying)
	s.Checkin("u1", time.Now())

	snap, err := s.Snapshot("u1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.XP != 50 {
		t.Fatalf("xp got=%d want=50", snap.XP)
	}
	if snap.Streak != 1 {
		t.Fatalf("streak got=%d want=1", snap.Streak)
	}
	if snap.Level.Level.Name != "Scholar" {
		t.Fatalf("level got=%s want=Scholar", snap.Level.Level.Name)
	}
	if len(snap.Badges) != 2 {
		t.Fatalf("badges got=%d want=2", len(snap.Badges))
	}
	if len(snap.WeeklyMinutes) != 7 {
		t.Fatalf("weekly slots got=%d want=7", len(snap.WeeklyMinutes))
	}
}
