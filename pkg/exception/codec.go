package exception

import "errors"

// Codec errors
var (
	ErrMalformedRecord = errors.New("codec: malformed record")
)
