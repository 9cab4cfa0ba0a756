package domain

import (
	"context"
	"testing"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, ownerID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	args := m.Called(ctx, ownerID, name, roster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListTeams(ctx context.Context, ownerID string) ([]entities.Team, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ReplaceRoster(ctx context.Context, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	args := m.Called(ctx, teamID, name, roster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

type sessionsMock struct{ mock.Mock }

var _ SessionStore = (*sessionsMock)(nil)

func (m *sessionsMock) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *sessionsMock) Resolve(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *sessionsMock) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestUsecase(repo *repoMock, sessions *sessionsMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, sessions, time.Second)
}

func TestUsecase_UpdateTeamMissingTargetIsUnauthorized(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	repo.On("GetTeam", mock.Anything, "t1").Return(nil, entities.ErrTeamNotFound)

	_, err := uc.UpdateTeam(context.Background(), "u1", "t1", "Aces", nil)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	repo.AssertNotCalled(t, "ReplaceRoster", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateTeamForeignOwnerIsUnauthorized(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", OwnerID: "someone-else"}, nil)

	_, err := uc.UpdateTeam(context.Background(), "u1", "t1", "Aces", nil)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	repo.AssertNotCalled(t, "ReplaceRoster", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateTeamDelegatesAfterAuthorize(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	roster := []entities.RosterEntry{{SpeciesID: 25, Name: "pikachu", Sprite: "s.png", Types: []string{"electric"}}}
	expected := &entities.Team{ID: "t1", Name: "Aces", OwnerID: "u1", Roster: roster}

	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", OwnerID: "u1"}, nil)
	repo.On("ReplaceRoster", mock.Anything, "t1", "Aces", roster).Return(expected, nil)

	team, err := uc.UpdateTeam(context.Background(), "u1", "t1", "Aces", roster)
	require.NoError(t, err)
	require.Equal(t, expected, team)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteTeamForeignOwnerIsUnauthorized(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", OwnerID: "someone-else"}, nil)

	err := uc.DeleteTeam(context.Background(), "u1", "t1")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	repo.AssertNotCalled(t, "DeleteTeam", mock.Anything, mock.Anything)
}

func TestUsecase_DeleteTeamDelegatesAfterAuthorize(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", OwnerID: "u1"}, nil)
	repo.On("DeleteTeam", mock.Anything, "t1").Return(nil)

	require.NoError(t, uc.DeleteTeam(context.Background(), "u1", "t1"))
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	_, err := uc.CreateTeam(context.Background(), "", "Aces", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AuthenticateEmptyToken(t *testing.T) {
	uc := newTestUsecase(&repoMock{}, &sessionsMock{})

	_, err := uc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_AuthenticateUnknownToken(t *testing.T) {
	sessions := &sessionsMock{}
	uc := newTestUsecase(&repoMock{}, sessions)

	sessions.On("Resolve", mock.Anything, "nope").Return("", entities.ErrUnauthorized)

	_, err := uc.Authenticate(context.Background(), "nope")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_AuthenticateResolvesPrincipal(t *testing.T) {
	repo := &repoMock{}
	sessions := &sessionsMock{}
	uc := newTestUsecase(repo, sessions)

	sessions.On("Resolve", mock.Anything, "tok").Return("u1", nil)
	repo.On("GetUser", mock.Anything, "u1").Return(&entities.User{ID: "u1", Username: "ash", DisplayName: "Ash"}, nil)

	principal, err := uc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, &entities.Principal{ID: "u1", Name: "Ash"}, principal)
}

func TestUsecase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entities.User{ID: "u1", Username: "ash", DisplayName: "Ash", PasswordHash: string(hash)}

	repo := &repoMock{}
	sessions := &sessionsMock{}
	uc := newTestUsecase(repo, sessions)

	repo.On("GetUserByUsername", mock.Anything, "ash").Return(stored, nil)
	sessions.On("Create", mock.Anything, "u1").Return("tok", nil)

	_, _, err = uc.Login(context.Background(), "ash", "wrong-pass")
	require.ErrorIs(t, err, entities.ErrBadCredentials)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	token, user, err := uc.Login(context.Background(), "ash", "secret-1")
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.Equal(t, stored, user)
}

func TestUsecase_LoginUnknownUserIsBadCredentials(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	repo.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, entities.ErrUserNotFound)

	_, _, err := uc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, entities.ErrBadCredentials)
}

func TestUsecase_RegisterShortPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &sessionsMock{})

	_, err := uc.Register(context.Background(), "ash", "abc", "Ash")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}
