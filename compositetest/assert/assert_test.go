package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/composite/errors"
)

func TestIsNil(t *testing.T) {
	var nilErr *errors.Error
	cases := map[string]struct {
		value interface{}
		want  bool
	}{
		"nil":                {value: nil, want: true},
		"typed nil pointer":  {value: nilErr, want: true},
		"nil slice":          {value: []byte(nil), want: true},
		"empty slice":        {value: []byte{}, want: false},
		"integer is not nil": {value: 4, want: false},
		"error is not nil":   {value: errors.ErrEncoding, want: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := isNil(tc.value); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFailures(t *testing.T) {
	cases := map[string]func(Tester){
		"nil":   func(t Tester) { Nil(t, fmt.Errorf("boom")) },
		"equal": func(t Tester) { Equal(t, 1, 2) },
		"panic": func(t Tester) { Panics(t, func() {}) },
	}
	for testName, fn := range cases {
		t.Run(testName, func(t *testing.T) {
			rec := &recorder{}
			fn(rec)
			if !rec.failed {
				t.Fatal("assertion must fail")
			}
		})
	}
}

type recorder struct {
	failed bool
}

func (r *recorder) Helper() {}
func (r *recorder) Fatal(...interface{}) { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }
