/*
Package errors implements the error kinds used by the composite signature
packages.

Every failure returned by this module wraps one of the registered root errors
declared in this package (ErrParamNull, ErrEmptyComponentSet, ErrEncoding, ...)
so that callers can test the category of a failure with

	errors.ErrEncoding.Is(err)

without depending on the message. Use ErrXyz.New and ErrXyz.Newf to create an
instance at the point of failure, or errors.Wrap(err, "...") to extend an error
returned by a lower layer. The innermost wrap attaches a stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

Info converts an error into a (code, message) pair suitable for diagnostics,
hiding messages of errors that were not classified.
*/
package errors
