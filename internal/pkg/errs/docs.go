// Package errs holds the error types shared by the domain, application and adapter layers.
//
// Every type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrValueIsRequired) with a struct carrying the offending parameter, so callers can branch
// with errors.Is and still log a descriptive message:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return c.JSON(http.StatusNotFound, ...)
//	}
package errs
