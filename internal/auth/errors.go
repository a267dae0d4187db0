package auth

import "errors"

// ErrInvalidToken covers every token verification failure: malformed
// structure, bad signature, expired, or missing subject. Callers must not
// expose which case occurred.
var ErrInvalidToken = errors.New("invalid or expired token")
