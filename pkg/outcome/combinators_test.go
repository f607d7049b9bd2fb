package outcome

import (
	"errors"
	"strconv"
	"testing"
)

func TestFreeMatch_DelegatesToMethod(t *testing.T) {
	t.Parallel()
	values, errs := 0, 0

	Match(Success[int, testCode](3),
		func(v int) { values++ },
		func(e Error[testCode]) { errs++ })
	Match(Fail[int](NewErrorCode(codeError)),
		func(v int) { values++ },
		func(e Error[testCode]) { errs++ })
	Match(Empty[int, testCode](),
		func(v int) { values++ },
		func(e Error[testCode]) { errs++ })

	if values != 1 || errs != 1 {
		t.Fatalf("expected one value and one error dispatch; values=%d, errs=%d", values, errs)
	}
}

func TestOnSuccess_AppliesTransformer(t *testing.T) {
	t.Parallel()
	r := OnSuccess(Success[int, testCode](41), func(v int) Result[int, testCode] {
		return Success[int, testCode](v + 1)
	})
	if !r.IsValue() || r.Get() != 42 {
		t.Fatalf("expected success with 42, got: %s", r.Type())
	}
}

func TestOnSuccess_TransformerMayFail(t *testing.T) {
	t.Parallel()
	r := OnSuccess(Success[int, testCode](-5), func(v int) Result[string, testCode] {
		if v < 0 {
			return Fail[string](NewError("negative", codeError))
		}
		return Success[string, testCode](strconv.Itoa(v))
	})
	if !r.IsError() || r.Err().Message() != "negative" {
		t.Fatalf("expected transformer failure to pass through, got: %s", r.Type())
	}
}

func TestOnSuccess_ErrorShortCircuits(t *testing.T) {
	t.Parallel()
	called := false
	in := Fail[int](NewError("bad input", codeError))

	out := OnSuccess(in, func(v int) Result[string, testCode] {
		called = true
		return Success[string, testCode]("unreachable")
	})

	if called {
		t.Fatalf("transformer must not run on Error state")
	}
	if !out.IsError() {
		t.Fatalf("expected Error state, got: %s", out.Type())
	}
	if out.Err().Message() != "bad input" || out.Err().Code() != codeError {
		t.Fatalf("expected identical error after re-typing, got: (%q, %v)", out.Err().Message(), out.Err().Code())
	}
	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected identity carried forward on propagation")
	}
}

func TestOnSuccess_EmptyPropagates(t *testing.T) {
	t.Parallel()
	called := false
	out := OnSuccess(Empty[int, testCode](), func(v int) Result[int, testCode] {
		called = true
		return Success[int, testCode](v + 1)
	})
	if called {
		t.Fatalf("transformer must not run on Empty state")
	}
	if !out.IsEmpty() {
		t.Fatalf("expected Empty state, got: %s", out.Type())
	}
}

func TestPropagate_PanicsOnValue(t *testing.T) {
	t.Parallel()
	mustPanicInvalidAccess(t, "Propagate", ContentValue, func() {
		Propagate[int, string](Success[int, testCode](1))
	})
}

func TestTry_NilError(t *testing.T) {
	t.Parallel()
	r := Try(10, nil, codeError)
	if !r.IsValue() || r.Get() != 10 {
		t.Fatalf("expected success with 10, got: %s", r.Type())
	}
}

func TestTry_NonNilError(t *testing.T) {
	t.Parallel()
	r := Try(0, errors.New("disk full"), codeTimeout)
	if !r.IsError() {
		t.Fatalf("expected Error state, got: %s", r.Type())
	}
	if r.Err().Message() != "disk full" || r.Err().Code() != codeTimeout {
		t.Fatalf("expected error text and code preserved, got: (%q, %v)", r.Err().Message(), r.Err().Code())
	}
}

// Mirrors the container's canonical walkthrough: construct, chain, recover.
func TestCanonicalScenario(t *testing.T) {
	t.Parallel()

	if r := Success[int, testCode](42); r.Type() != ContentValue || r.Get() != 42 {
		t.Fatalf("expected Value 42")
	}

	if r := Fail[int](NewError("bad input", codeError)); r.Type() != ContentError || r.Err().Message() != "bad input" {
		t.Fatalf("expected Error with 'bad input'")
	}

	inc := func(v int) Result[int, testCode] { return Success[int, testCode](v + 1) }
	if r := OnSuccess(Empty[int, testCode](), inc); r.Type() != ContentEmpty {
		t.Fatalf("expected Empty to propagate through OnSuccess")
	}

	got := Fail[int](NewErrorCode(codeError)).Recover(func(e Error[testCode]) int { return -1 })
	if got != -1 {
		t.Fatalf("expected -1, got: %d", got)
	}
}
