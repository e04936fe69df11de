package internal

import (
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/security"

	"gorm.io/gorm"
)

// Deps is the dependency bag handed to every handler. Everything in it is
// constructed once at startup and shared across requests.
type Deps struct {
	DB      *gorm.DB
	Argon   *security.ArgonHash
	Tokens  *security.TokenIssuer
	Storage service.Storage
	Prober  service.Prober
}
