package services_test

import (
	"fmt"
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func notFoundErr(key string) error {
	return fmt.Errorf("%s: %w", key, repositories.ErrUserNotFound)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test-secret")

	userRepo.On("GetByUsername", "admin").Return(nil, notFoundErr("admin")).Once()
	userRepo.On("GetByEmail", "admin@example.com").Return(nil, notFoundErr("admin@example.com")).Once()
	userRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		// The stored password must be a bcrypt hash of the original.
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(nil).Once()

	err := service.Register(&models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test-secret")

	userRepo.On("GetByUsername", "admin").Return(&models.User{ID: "x", Username: "admin"}, nil).Once()

	err := service.Register(&models.User{Username: "admin", Email: "a@b.c", Password: "secret123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userRepo.On("GetByUsername", "admin").Return(&models.User{
		ID:       "user-1",
		Username: "admin",
		Password: string(hashed),
	}, nil).Once()

	token, err := service.Login("admin", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin", claims["username"])
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "admin").Return(&models.User{
		ID:       "user-1",
		Username: "admin",
		Password: string(hashed),
	}, nil).Once()

	token, err := service.Login("admin", "wrong")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test-secret")

	userRepo.On("GetByUsername", "ghost").Return(nil, notFoundErr("ghost")).Once()

	token, err := service.Login("ghost", "whatever")

	// Same error as a wrong password: the username must not be probeable.
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	service := services.NewAuthService(new(MockUserRepository), "test-secret")

	claims, err := service.ValidateToken("not-a-token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	issuer := services.NewAuthService(userRepo, "secret-a")
	verifier := services.NewAuthService(new(MockUserRepository), "secret-b")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "admin").Return(&models.User{
		ID:       "user-1",
		Username: "admin",
		Password: string(hashed),
	}, nil).Once()

	token, err := issuer.Login("admin", "secret123")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
