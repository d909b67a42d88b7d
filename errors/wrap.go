package errors

import (
	"github.com/pkg/errors"
)

var (
	Wrap         = errors.Wrap
	Cause        = errors.Cause
	Wrapf        = errors.Wrapf
	WithMessagef = errors.WithMessagef
	Errorf       = errors.Errorf
	New          = errors.New
	WithStack    = errors.WithStack
	Is           = errors.Is
	As           = errors.As
)
