package fxcss

import "github.com/gofxcss/fxcss/internal/args"

// ArgumentError is the single error kind the library produces: an invalid
// argument passed to a setter or rendering operation, carrying the
// parameter name and the violated constraint. Test with errors.As.
type ArgumentError = args.ArgumentError
