package timeutil

import (
	"testing"
	"time"
)

func TestRealClock_NewTicker(t *testing.T) {
	clock := RealClock{}
	ticker := clock.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(200 * time.Millisecond):
		t.Error("ticker did not fire")
	}
}

func TestMockClock_AdvanceFiresTicker(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)
	ticker := clock.NewTicker(40 * time.Millisecond)

	clock.Advance(20 * time.Millisecond)
	select {
	case <-ticker.C():
		t.Fatal("ticker fired before its period elapsed")
	default:
	}

	clock.Advance(20 * time.Millisecond)
	select {
	case got := <-ticker.C():
		if want := start.Add(40 * time.Millisecond); !got.Equal(want) {
			t.Errorf("tick time = %v, want %v", got, want)
		}
	default:
		t.Fatal("ticker did not fire after its period")
	}
}

func TestMockTicker_ResetChangesPeriod(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	ticker := clock.NewTicker(100 * time.Millisecond)
	ticker.Reset(10 * time.Millisecond)

	mt := clock.Tickers()[0]
	if mt.Interval() != 10*time.Millisecond {
		t.Fatalf("Interval() = %v, want 10ms", mt.Interval())
	}

	clock.Advance(10 * time.Millisecond)
	select {
	case <-ticker.C():
	default:
		t.Fatal("ticker did not fire on the new period")
	}
}

func TestMockTicker_StopAndTrigger(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	ticker := clock.NewTicker(time.Millisecond)
	ticker.Stop()

	clock.Advance(time.Second)
	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}

	mt := clock.Tickers()[0]
	mt.Trigger(time.Unix(5, 0))
	mt.Trigger(time.Unix(6, 0))
	if got := <-ticker.C(); !got.Equal(time.Unix(5, 0)) {
		t.Errorf("Trigger delivered %v, want the first pending tick", got)
	}
}

func TestMockClock_After(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	ch := clock.After(time.Second)

	clock.Advance(500 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("After fired early")
	default:
	}

	clock.Advance(500 * time.Millisecond)
	select {
	case <-ch:
	default:
		t.Fatal("After did not fire")
	}

	if d := clock.Since(time.Unix(0, 0)); d != time.Second {
		t.Errorf("Since() = %v, want 1s", d)
	}
}
