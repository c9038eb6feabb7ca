package errors

import (
	"io"
	"testing"
)

func TestInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrEncoding,
			debug:    false,
			wantLog:  "encoding failure",
			wantCode: ErrEncoding.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrEncoding, "foo"), "bar"),
			debug:    false,
			wantLog:  "bar: foo: encoding failure",
			wantCode: ErrEncoding.code,
		},
		"nil is empty message": {
			err:      nil,
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"custom error": {
			err:      customErr{},
			debug:    false,
			wantLog:  "custom",
			wantCode: 999,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := Info(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestKind(t *testing.T) {
	if k := Kind(Wrap(ErrIndexOutOfRange, "id 7")); k != ErrIndexOutOfRange {
		t.Fatalf("want index out of range kind, got %v", k)
	}
	if k := Kind(io.EOF); k != nil {
		t.Fatalf("unclassified error must have no kind, got %v", k)
	}
	if k := Kind(nil); k != nil {
		t.Fatalf("nil error must have no kind, got %v", k)
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(Wrap(io.EOF, "secret path"), false); err.Error() != "internal error" {
		t.Fatalf("unexpected redacted message %q", err)
	}
	if err := Redact(ErrEncoding, false); err != ErrEncoding {
		t.Fatalf("registered errors must not be redacted, got %v", err)
	}
}

// customErr is a custom implementation of an error that provides a Code
// method.
type customErr struct{}

func (customErr) Code() uint32 { return 999 }

func (customErr) Error() string { return "custom" }
