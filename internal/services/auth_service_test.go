package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByPhoneOrCR(identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PhoneNumber == identifier {
			copied := *u
			return &copied, nil
		}
	}
	for _, u := range r.users {
		if u.CRNumber != nil && *u.CRNumber == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.PhoneNumber == user.PhoneNumber {
			return repositories.ErrUserAlreadyExists
		}
		if user.CRNumber != nil && u.CRNumber != nil && *u.CRNumber == *user.CRNumber {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateProfile(userID uint, fullName, phoneNumber string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	for id, other := range r.users {
		if id != userID && other.PhoneNumber == phoneNumber {
			return nil, repositories.ErrUserAlreadyExists
		}
	}
	u.FullName = fullName
	u.PhoneNumber = phoneNumber
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdatePasswordHash(userID uint, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// fakeNotifier records admin notifications synchronously.
type fakeNotifier struct {
	mu       sync.Mutex
	subjects []string
}

func (n *fakeNotifier) NotifyAdmin(ctx context.Context, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subjects = append(n.subjects, subject)
}

func (n *fakeNotifier) Subjects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.subjects...)
}

func newTestAuthService(t *testing.T, setupToken string) (AuthService, *fakeUserRepo, *fakeNotifier) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", "sonna_backend", "sonna_frontend", 7*24*time.Hour)
	require.NoError(t, err)

	repo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	return NewAuthService(repo, tokens, notifier, setupToken), repo, notifier
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName:    "Jane Roe",
		Email:       "jane@example.com",
		Password:    "abc123",
		PhoneNumber: "555",
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	svc, _, notifier := newTestAuthService(t, "")
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserTypeIndividual, resp.User.UserType)
	assert.NotEqual(t, "abc123", resp.User.PasswordHash)

	login, err := svc.Login(ctx, &dto.LoginRequest{PhoneOrCR: "555", Password: "abc123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	assert.Contains(t, notifier.Subjects(), "New User Registered")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t, "")
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.PhoneNumber = "556"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestRegister_CRNumberLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t, "")
	ctx := context.Background()

	cr := "CR-1001"
	req := registerReq()
	req.UserType = models.UserTypeFactory
	req.CRNumber = &cr

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeFactory, resp.User.UserType)

	login, err := svc.Login(ctx, &dto.LoginRequest{PhoneOrCR: "CR-1001", Password: "abc123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService(t, "")
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, &dto.LoginRequest{PhoneOrCR: "555", Password: "nope"})
	_, unknownID := svc.Login(ctx, &dto.LoginRequest{PhoneOrCR: "000", Password: "abc123"})

	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownID, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownID)
}

func TestLogin_RehashesLegacyHash(t *testing.T) {
	svc, repo, _ := newTestAuthService(t, "")
	ctx := context.Background()

	low, err := bcrypt.GenerateFromPassword([]byte("abc123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FullName:     "Legacy User",
		Email:        "legacy@example.com",
		PhoneNumber:  "777",
		PasswordHash: string(low),
		UserType:     models.UserTypeIndividual,
	}
	require.NoError(t, repo.Create(user))

	_, err = svc.Login(ctx, &dto.LoginRequest{PhoneOrCR: "777", Password: "abc123"})
	require.NoError(t, err)

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, string(low), stored.PasswordHash)
	assert.False(t, auth.NeedsRehash(stored.PasswordHash))
	assert.True(t, auth.CheckPasswordHash("abc123", stored.PasswordHash))
}

func TestRegisterAdmin_SetupTokenGate(t *testing.T) {
	ctx := context.Background()

	t.Run("no token configured", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t, "")
		_, err := svc.RegisterAdmin(ctx, &dto.AdminRegisterRequest{
			RegisterRequest: *registerReq(),
			SetupToken:      "anything",
		})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("wrong token", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t, "expected")
		_, err := svc.RegisterAdmin(ctx, &dto.AdminRegisterRequest{
			RegisterRequest: *registerReq(),
			SetupToken:      "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSetupToken)
	})

	t.Run("correct token forces admin role", func(t *testing.T) {
		svc, _, notifier := newTestAuthService(t, "expected")
		req := registerReq()
		req.UserType = models.UserTypeIndividual // ignored

		resp, err := svc.RegisterAdmin(ctx, &dto.AdminRegisterRequest{
			RegisterRequest: *req,
			SetupToken:      "expected",
		})
		require.NoError(t, err)
		assert.Equal(t, models.UserTypeAdmin, resp.User.UserType)
		assert.NotEmpty(t, resp.Token)
		assert.Contains(t, notifier.Subjects(), "New Admin Registered")
	})
}
