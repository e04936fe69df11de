package validators

import "errors"

var (
	ErrUsernameEmpty   = errors.New("no username provided")
	ErrUsernameLength  = errors.New("username must be between 3 and 30 characters long")
	ErrUsernameInvalid = errors.New("username may only contain lowercase letters, digits and underscores")
)

// UsernameValidator expects the username to be lowercased already
func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	if len(u) < 3 || len(u) > 30 {
		return ErrUsernameLength
	}

	for i := range len(u) {
		c := u[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return ErrUsernameInvalid
	}

	return nil
}
