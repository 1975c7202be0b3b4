package input

import (
	"context"

	"localenorm/internal/domain/entities"
)

type NormalizerUseCase interface {
	NormalizeAll(ctx context.Context, tags []string) ([]entities.LocaleResult, error)
	CheckAll(ctx context.Context, tags []string) ([]entities.LocaleResult, error)
}
