package services

import (
	"context"
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated employees.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the given employee and
	// returns it alongside its expiry time.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)
}
