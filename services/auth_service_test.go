package services

import (
	"testing"

	"github.com/maharit108/Coffee-Talk-API/config"
	"github.com/maharit108/Coffee-Talk-API/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = *user
	return nil
}

func signUpCreds(email, password string) models.SignUpCredentials {
	return models.SignUpCredentials{
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	response, err := svc.Register(signUpCreds("alice@example.com", "secret123"))
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	assert.Equal(t, "alice@example.com", response.User.Email)

	stored, err := repo.GetByID(response.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(response.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(response.User.ID), claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(signUpCreds("alice@example.com", "secret123"))
	require.NoError(t, err)

	_, err = svc.Register(signUpCreds("alice@example.com", "another66"))
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestLoginWithValidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(signUpCreds("alice@example.com", "secret123"))
	require.NoError(t, err)

	response, err := svc.Login(models.SignInCredentials{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
}

func TestLoginWithWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(signUpCreds("alice@example.com", "secret123"))
	require.NoError(t, err)

	_, err = svc.Login(models.SignInCredentials{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginWithUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Login(models.SignInCredentials{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	response, err := svc.Register(signUpCreds("alice@example.com", "secret123"))
	require.NoError(t, err)
	identity := models.Identity{ID: response.User.ID, Email: response.User.Email}

	err = svc.ChangePassword(identity, models.PasswordChange{Old: "wrong", New: "updated456"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	require.NoError(t, svc.ChangePassword(identity, models.PasswordChange{Old: "secret123", New: "updated456"}))

	_, err = svc.Login(models.SignInCredentials{Email: "alice@example.com", Password: "updated456"})
	assert.NoError(t, err)

	_, err = svc.Login(models.SignInCredentials{Email: "alice@example.com", Password: "secret123"})
	assert.Error(t, err)
}
