package validators

import "errors"

var ErrIDInvalid = errors.New("malformed identifier")

// IDLength is the length of every entity ID generated by the application
const IDLength = 16

// IDValidator rejects anything that can't be a nanoid generated by
// model.NewID. Runs before any query so malformed references never reach
// the database.
func IDValidator(id string) error {
	if len(id) != IDLength {
		return ErrIDInvalid
	}

	for i := range IDLength {
		c := id[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return ErrIDInvalid
	}

	return nil
}
