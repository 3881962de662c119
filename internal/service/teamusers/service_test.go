package teamusers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/domain"
	teamUserRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/teamuser"
	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
	"github.com/Liandro13/method-passion-site/pkg/logger"
	"github.com/Liandro13/method-passion-site/pkg/ptr"
)

type memoryUsers struct {
	users  map[int64]*domain.TeamUser
	nextID int64
}

func (m *memoryUsers) List(_ context.Context) ([]*domain.TeamUser, error) {
	res := make([]*domain.TeamUser, 0, len(m.users))
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*domain.TeamUser, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, teamUserRepo.ErrTeamUserNotFound
}

func (m *memoryUsers) Create(_ context.Context, user *domain.TeamUser) (*domain.TeamUser, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, teamUserRepo.ErrUsernameTaken
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUsers) Update(_ context.Context, id int64, patch domain.TeamUserPatch) error {
	u, ok := m.users[id]
	if !ok {
		return teamUserRepo.ErrTeamUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.AllowedAccommodationIDs != nil {
		u.AllowedAccommodationIDs = *patch.AllowedAccommodationIDs
	}
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return teamUserRepo.ErrTeamUserNotFound
	}
	delete(m.users, id)
	return nil
}

type memorySessions struct {
	deletedFor []int64
}

func (m *memorySessions) DeleteByTeamUser(_ context.Context, id int64) (int64, error) {
	m.deletedFor = append(m.deletedFor, id)
	return 1, nil
}

type directTx struct{}

func (directTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService() (*Service, *memoryUsers, *memorySessions) {
	users := &memoryUsers{users: map[int64]*domain.TeamUser{}}
	sessions := &memorySessions{}
	return NewService(users, sessions, directTx{}, logger.NewNop()), users, sessions
}

func TestCreate_HashesPassword(t *testing.T) {
	svc, users, _ := newService()

	resp, err := svc.Create(context.Background(), &models.CreateTeamUserRequest{
		Username:                "maria",
		Password:                "secret1",
		Name:                    "Maria",
		AllowedAccommodationIDs: []int64{1, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, resp.AllowedAccommodations)
	stored := users.users[resp.ID]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, auth.CheckPassword(stored.PasswordHash, "secret1"))
}

func TestCreate_Errors(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateTeamUserRequest{Username: "maria", Password: "secret1", Name: "Maria"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.CreateTeamUserRequest{Username: "maria", Password: "secret1", Name: "Other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Create(ctx, &models.CreateTeamUserRequest{Username: "joao", Password: "123", Name: "João"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateTeamUserRequest{Username: " ", Password: "secret1", Name: "João"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, users, sessions := newService()
	created, err := svc.Create(context.Background(), &models.CreateTeamUserRequest{
		Username: "maria", Password: "secret1", Name: "Maria", AllowedAccommodationIDs: []int64{1},
	})
	require.NoError(t, err)
	hashBefore := users.users[created.ID].PasswordHash

	resp, err := svc.Update(context.Background(), &models.UpdateTeamUserRequest{
		ID:                      created.ID,
		AllowedAccommodationIDs: ptr.Ptr([]int64{2, 3}),
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.Name)
	assert.Equal(t, []int64{2, 3}, resp.AllowedAccommodations)
	assert.Equal(t, hashBefore, users.users[created.ID].PasswordHash)
	assert.Empty(t, sessions.deletedFor)

	_, err = svc.Update(context.Background(), &models.UpdateTeamUserRequest{ID: created.ID, Password: ptr.Ptr("newpass")})
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, sessions.deletedFor)
}

func TestUpdate_Errors(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Update(context.Background(), &models.UpdateTeamUserRequest{ID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), &models.UpdateTeamUserRequest{ID: 1, Name: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrTeamUserNotFound)
}

func TestDelete_RemovesSessionsFirst(t *testing.T) {
	svc, users, sessions := newService()
	created, err := svc.Create(context.Background(), &models.CreateTeamUserRequest{Username: "maria", Password: "secret1", Name: "Maria"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	assert.Empty(t, users.users)
	assert.Equal(t, []int64{created.ID}, sessions.deletedFor)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrTeamUserNotFound)
}
