package repositories

import (
	"context"

	"media-service/internal/domain/dto"
)

type AuthClient interface {
	ValidateToken(ctx context.Context, token string) (*dto.TokenClaims, error)
}
