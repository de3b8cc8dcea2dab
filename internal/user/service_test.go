package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    map[string]*User{},
		byEmail: map[string]*User{},
	}
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	f.nextID++
	u.ID = string(rune('a' + f.nextID - 1))
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	f.byEmail[u.Email].IsActive = false
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "h:"+plain {
		return ErrInvalidCredentials
	}
	return nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, plainHasher{}), repo
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "  Admin@Example.COM ", "secret-password", " Admin ")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", u.Email)
	require.Equal(t, "Admin", *u.DisplayName)
	require.True(t, u.IsActive)
	require.False(t, u.IsSystemAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin@example.com", "secret-password", "One")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ADMIN@example.com", "secret-password", "Two")
	require.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "admin@example.com", "short", "Admin")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "admin@example.com", "secret-password", "Admin")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "admin@example.com", "secret-password")
	require.NoError(t, err)
	require.Equal(t, created.ID, u.ID)
	require.NotNil(t, repo.byID[u.ID].LastLoginAt)

	_, err = svc.Login(ctx, "admin@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "admin@example.com", "secret-password", "Admin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.Login(ctx, "admin@example.com", "secret-password")
	require.ErrorIs(t, err, ErrInactiveUser)
}

func TestUpdateAccountFlags(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "admin@example.com", "secret-password", "Admin")
	require.NoError(t, err)

	makeAdmin := true
	clearName := ""
	updated, err := svc.Update(ctx, u.ID, UpdateRequest{
		DisplayName:   &clearName,
		IsSystemAdmin: &makeAdmin,
	})
	require.NoError(t, err)
	require.Nil(t, updated.DisplayName)
	require.True(t, updated.IsSystemAdmin)

	_, err = svc.Update(ctx, "missing", UpdateRequest{})
	require.ErrorIs(t, err, ErrNotFound)
}
