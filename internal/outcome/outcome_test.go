package outcome

import (
	"testing"
)

func TestOk(t *testing.T) {
	o := Ok(42)

	if !o.OK() {
		t.Error("Ok outcome reported as failure")
	}
	if o.Value() != 42 {
		t.Errorf("Value() = %v, want 42", o.Value())
	}
	if len(o.Errors()) != 0 {
		t.Errorf("Errors() = %v, want empty", o.Errors())
	}
}

func TestFail(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		rest     []string
		expected []string
	}{
		{
			name:     "single error",
			first:    "boom",
			expected: []string{"boom"},
		},
		{
			name:     "multiple errors",
			first:    "first",
			rest:     []string{"second", "third"},
			expected: []string{"first", "second", "third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Fail[string](tt.first, tt.rest...)

			if o.OK() {
				t.Error("Fail outcome reported as success")
			}
			errs := o.Errors()
			if len(errs) != len(tt.expected) {
				t.Fatalf("Errors() has %d entries, want %d", len(errs), len(tt.expected))
			}
			for i, want := range tt.expected {
				if errs[i] != want {
					t.Errorf("Errors()[%d] = %q, want %q", i, errs[i], want)
				}
			}
			if o.Value() != "" {
				t.Errorf("Value() = %q, want zero value", o.Value())
			}
		})
	}
}

func TestFailf(t *testing.T) {
	o := Failf[int]("failed to fetch: %s", "timeout")

	if o.OK() {
		t.Error("Failf outcome reported as success")
	}
	if got := o.ErrorString(); got != "failed to fetch: timeout" {
		t.Errorf("ErrorString() = %q", got)
	}
}

func TestPropagate(t *testing.T) {
	src := Fail[string]("network down", "dns lookup failed")
	dst := Propagate[int](src)

	if dst.OK() {
		t.Error("propagated outcome reported as success")
	}
	if got := dst.ErrorString(); got != "network down; dns lookup failed" {
		t.Errorf("ErrorString() = %q", got)
	}
}

func TestPropagateFromSuccess(t *testing.T) {
	// Propagating a success is a caller bug; the result must still be a
	// failure so the invariant holds.
	dst := Propagate[int](Ok("fine"))

	if dst.OK() {
		t.Error("propagated outcome reported as success")
	}
	if len(dst.Errors()) == 0 {
		t.Error("propagated outcome carries no errors")
	}
}

func TestDone(t *testing.T) {
	o := Done()
	if !o.OK() {
		t.Error("Done outcome reported as failure")
	}
}

func TestErrorsIsACopy(t *testing.T) {
	o := Fail[int]("original")
	errs := o.Errors()
	errs[0] = "mutated"

	if o.ErrorString() != "original" {
		t.Error("mutating Errors() result changed the outcome")
	}
}
