package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If any of the provided errors is a multi error, its content is flattened so
// that the result is always a single level collection.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// multiErr groups errors that happened independently of each other, for
// example several invalid configuration fields.
type multiErr []error

var (
	_ error    = multiErr(nil)
	_ unpacker = multiErr(nil)
)

func (m multiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m), strings.Join(points, "\n\t"))
}

// Unpack returns all errors of this collection.
func (m multiErr) Unpack() []error {
	return m
}

// Code returns the code of the first error, consistent with a fail-fast
// reporting of the collection.
func (m multiErr) Code() uint32 {
	if len(m) == 0 {
		return successCode
	}
	return code(m[0])
}
