package cli

import "github.com/m-mizutani/goerr/v2"

var (
	ErrMissingArgument = goerr.New("missing argument")
	ErrInvalidArgument = goerr.New("invalid argument")
)

// Context keys for error values
const (
	ArgumentKey = "argument"
)
