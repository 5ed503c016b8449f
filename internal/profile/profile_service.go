package profile

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	DisplayName(ctx context.Context, sessionID string) (ProfileResponse, error)
}

type service struct {
	store  NameStore
	logger *zap.Logger
}

type Deps struct {
	Store  NameStore
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Store == nil {
		panic("name store cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{store: deps.Store, logger: deps.Logger}
}

func (s *service) DisplayName(ctx context.Context, sessionID string) (ProfileResponse, error) {
	name, err := s.store.DisplayName(ctx, sessionID)
	if err != nil {
		s.logger.Warn("display name lookup failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return ProfileResponse{}, err
	}
	return ProfileResponse{Name: name}, nil
}
