package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewChecker(t *testing.T) {
	checker := NewChecker("test-checker", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "test passed"}
	})

	if checker.Name() != "test-checker" {
		t.Errorf("Name() = %v, want test-checker", checker.Name())
	}
	result := checker.Check(context.Background())
	if result.Status != StatusHealthy || result.Message != "test passed" {
		t.Errorf("Check() = %+v", result)
	}
}

func TestErrorCheck(t *testing.T) {
	ok := ErrorCheck("ok", func(context.Context) error { return nil })
	if got := ok.Check(context.Background()).Status; got != StatusHealthy {
		t.Errorf("nil error: status = %v, want healthy", got)
	}

	failing := ErrorCheck("bad", func(context.Context) error { return errors.New("pattern email does not compile") })
	result := failing.Check(context.Background())
	if result.Status != StatusUnhealthy || result.Message != "pattern email does not compile" {
		t.Errorf("error: Check() = %+v", result)
	}
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unknown", []Status{StatusUnknown, StatusHealthy}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("textkit", "0.1.0")
			names := []string{"c", "a", "b"}
			for i, st := range tt.statuses {
				st := st
				registry.RegisterFunc(names[i], func(context.Context) CheckResult {
					return CheckResult{Status: st}
				})
			}

			report := registry.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Fatalf("len(Checks) = %d, want %d", len(report.Checks), len(tt.statuses))
			}
			for i := 1; i < len(report.Checks); i++ {
				if report.Checks[i-1].Name > report.Checks[i].Name {
					t.Errorf("checks not sorted: %v before %v", report.Checks[i-1].Name, report.Checks[i].Name)
				}
			}
		})
	}
}

func TestRegistry_ReportFields(t *testing.T) {
	registry := NewRegistry("textkit", "0.1.0")
	registry.Register(AlwaysHealthy("patterns"))

	report := registry.Check(context.Background())
	if report.Service != "textkit" || report.Version != "0.1.0" {
		t.Errorf("report = %+v", report)
	}
	if !report.Healthy() {
		t.Error("Healthy() = false, want true")
	}
	if report.Checks[0].Name != "patterns" || report.Checks[0].Timestamp.IsZero() {
		t.Errorf("check = %+v", report.Checks[0])
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry("textkit", "0.1.0")
	registry.Register(AlwaysHealthy("a"))
	registry.Register(AlwaysHealthy("b"))
	registry.Unregister("a")

	names := registry.Names()
	if len(names) != 1 || names[0] != "b" {
		t.Errorf("Names() = %v, want [b]", names)
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("textkit", "0.1.0")
	var calls int32
	for _, name := range []string{"a", "b", "c", "d"} {
		registry.RegisterFunc(name, func(context.Context) CheckResult {
			atomic.AddInt32(&calls, 1)
			time.Sleep(10 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		})
	}

	start := time.Now()
	registry.Check(context.Background())
	if atomic.LoadInt32(&calls) != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
	if elapsed := time.Since(start); elapsed > 35*time.Millisecond {
		t.Logf("checks took %v, expected them to run concurrently", elapsed)
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	registry := NewRegistry("textkit", "0.1.0")
	registry.Register(AlwaysHealthy("fast"))
	registry.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			time.Sleep(50 * time.Millisecond)
		}
		return CheckResult{Status: StatusHealthy}
	})

	report := registry.CheckWithTimeout(20 * time.Millisecond)
	if report.Status != StatusDegraded {
		t.Errorf("Status = %v, want degraded", report.Status)
	}
	var slow CheckResult
	for _, c := range report.Checks {
		if c.Name == "slow" {
			slow = c
		}
	}
	if slow.Status != StatusUnknown {
		t.Errorf("slow check = %+v, want unknown", slow)
	}
}

func TestReport_Healthy(t *testing.T) {
	for st, want := range map[Status]bool{
		StatusHealthy:   true,
		StatusDegraded:  true,
		StatusUnhealthy: false,
		StatusUnknown:   false,
	} {
		if got := (&Report{Status: st}).Healthy(); got != want {
			t.Errorf("Healthy() with %v = %v, want %v", st, got, want)
		}
	}
}
