// Package model defines database models
package model

import gonanoid "github.com/matoous/go-nanoid/v2"

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const idLength = 16

// NewID generates the primary key used by every entity. Alphanumeric only so
// IDs are URL-safe without escaping.
func NewID() (string, error) {
	return gonanoid.Generate(idCharset, idLength)
}
