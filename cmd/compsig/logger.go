package main

import (
	"io"

	"github.com/iov-one/composite/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// newLogger returns a logger writing to w only entries of given level or
// above. Level is one of debug, info, error or none.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), opt), nil
}
