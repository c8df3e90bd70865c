package transcriber

import "errors"

// ErrInputTooLarge reports a source file over the configured size or
// duration ceiling. It is raised before any engine invocation.
var ErrInputTooLarge = errors.New("input exceeds configured ceiling")
