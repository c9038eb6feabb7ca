package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrEncoding,
			root: ErrEncoding,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrEncoding, "foo"),
			root: ErrEncoding,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrEncoding,
			b:      ErrEncoding,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrEncoding,
			b:      ErrComponentCountMismatch,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrEncoding,
			b:      errors.Wrap(ErrEncoding, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrEncoding,
			b:      errors.Wrap(ErrIndexOutOfRange, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrEncoding,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrEncoding,
			b:      errors.Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrEncoding,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrEncoding,
			b:      nil,
			wantIs: false,
		},
		"multierr with the same error": {
			a:      ErrEncoding,
			b:      Append(ErrEncoding, ErrParamNull),
			wantIs: true,
		},
		"multierr with random order": {
			a:      ErrEncoding,
			b:      Append(ErrParamNull, ErrEncoding),
			wantIs: true,
		},
		"multierr with wrapped err": {
			a:      ErrEncoding,
			b:      Append(Wrap(ErrEncoding, "test")),
			wantIs: true,
		},
		"multierr with different error": {
			a:      ErrEncoding,
			b:      Append(ErrParamNull),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct {
}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrEncoding.Code(), "another encoding")
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("component exploded")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
}

func TestStdlibUnwrap(t *testing.T) {
	err := Wrap(Wrap(ErrComponentOperation, "component 1"), "sign")
	if !stdlib.Is(err, ErrComponentOperation) {
		t.Fatal("stdlib errors.Is must see through the wrapping")
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Append(ErrParamNull); err.Error() != ErrParamNull.Error() {
		t.Fatalf("single error must render as itself, got %q", err)
	}
	err := Append(Append(ErrParamNull, ErrEncoding), nil, ErrNotFound)
	if n := len(err.(multiErr)); n != 3 {
		t.Fatalf("want a flat collection of 3 errors, got %d", n)
	}
	if code, _ := Info(err, false); code != ErrParamNull.Code() {
		t.Fatalf("want the first error code, got %d", code)
	}
}
