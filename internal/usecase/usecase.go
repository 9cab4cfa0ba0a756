package usecase

import (
	"context"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/repository"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TeamUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, sessions SessionStore, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, sessions, timeout)
}
