package user

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/jwt"
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByResetToken(_ context.Context, tokenHash string, now time.Time) (*entities.User, error) {
	for _, u := range f.users {
		if u.ResetPasswordToken == tokenHash && u.ResetPasswordExpire != nil && u.ResetPasswordExpire.After(now) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName, nil
}
func (fakeS3) DeleteFile(string) error            { return nil }
func (fakeS3) GetPublicLinkKey(key string) string { return "https://cdn.test/" + key }
func (fakeS3) GetObjectKeyFromLink(s string) string {
	return s
}

type fakeMailer struct {
	to      []string
	bodies  []string
	failing bool
}

func (f *fakeMailer) Send(toEmail, _, body string) error {
	if f.failing {
		return fmt.Errorf("smtp unavailable")
	}
	f.to = append(f.to, toEmail)
	f.bodies = append(f.bodies, body)
	return nil
}

type fixture struct {
	repo    *fakeUserRepository
	mailer  *fakeMailer
	service UserService
}

func newFixture() *fixture {
	repo := newFakeUserRepository()
	mailer := &fakeMailer{}
	jwtService := jwt.NewJWTService("test-secret")
	return &fixture{
		repo:    repo,
		mailer:  mailer,
		service: NewUserService(repo, jwtService, fakeS3{}, mailer, "https://recipes.test"),
	}
}

func registerRequest(email string) domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Alice",
		Email:    email,
		Password: "correct horse",
		Avatar:   &multipart.FileHeader{Filename: "avatar.png"},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and issues a token", func(t *testing.T) {
		f := newFixture()

		res, err := f.service.Register(ctx, registerRequest("a@x.com"))
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, domain.RoleUser, res.User.Role)

		stored, err := f.repo.GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.Register(ctx, registerRequest("a@x.com"))
		require.NoError(t, err)

		_, err = f.service.Register(ctx, registerRequest("a@x.com"))
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("avatar required", func(t *testing.T) {
		f := newFixture()
		req := registerRequest("a@x.com")
		req.Avatar = nil

		_, err := f.service.Register(ctx, req)
		assert.ErrorIs(t, err, domain.ErrAvatarRequired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.service.Register(ctx, registerRequest("a@x.com"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := f.service.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errWrongPassword := f.service.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "nope"})
		_, errUnknownEmail := f.service.Login(ctx, domain.LoginRequest{Email: "b@x.com", Password: "nope"})

		assert.ErrorIs(t, errWrongPassword, domain.ErrIncorrectCredentials)
		assert.ErrorIs(t, errUnknownEmail, domain.ErrIncorrectCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	res, err := f.service.Register(ctx, registerRequest("a@x.com"))
	require.NoError(t, err)
	userID := res.User.ID

	err = f.service.ChangePassword(ctx, domain.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "next password",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrOldPasswordMismatch)

	err = f.service.ChangePassword(ctx, domain.ChangePasswordRequest{
		OldPassword: "correct horse",
		NewPassword: "next password",
	}, userID)
	require.NoError(t, err)

	_, err = f.service.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "next password"})
	assert.NoError(t, err)
}

var resetTokenPattern = regexp.MustCompile(`resetpassword/([0-9a-f]+)`)

func TestResetPasswordFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("token is stored hashed and works once before expiry", func(t *testing.T) {
		f := newFixture()
		res, err := f.service.Register(ctx, registerRequest("a@x.com"))
		require.NoError(t, err)

		require.NoError(t, f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "a@x.com"}))
		require.Len(t, f.mailer.bodies, 1)

		match := resetTokenPattern.FindStringSubmatch(f.mailer.bodies[0])
		require.Len(t, match, 2)
		rawToken := match[1]

		userID := uuid.MustParse(res.User.ID)
		stored := f.repo.users[userID]
		assert.NotEqual(t, rawToken, stored.ResetPasswordToken, "raw token must never be persisted")
		require.NotNil(t, stored.ResetPasswordExpire)

		err = f.service.ResetPassword(ctx, rawToken, domain.ResetPasswordRequest{NewPassword: "fresh password"})
		require.NoError(t, err)

		assert.Empty(t, stored.ResetPasswordToken)
		assert.Nil(t, stored.ResetPasswordExpire)

		_, err = f.service.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "fresh password"})
		assert.NoError(t, err)

		// single use
		err = f.service.ResetPassword(ctx, rawToken, domain.ResetPasswordRequest{NewPassword: "again"})
		assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		f := newFixture()
		res, err := f.service.Register(ctx, registerRequest("a@x.com"))
		require.NoError(t, err)

		require.NoError(t, f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "a@x.com"}))
		match := resetTokenPattern.FindStringSubmatch(f.mailer.bodies[0])
		require.Len(t, match, 2)

		expired := time.Now().Add(-time.Minute)
		f.repo.users[uuid.MustParse(res.User.ID)].ResetPasswordExpire = &expired

		err = f.service.ResetPassword(ctx, match[1], domain.ResetPasswordRequest{NewPassword: "fresh password"})
		assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture()
		err := f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "nobody@x.com"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	res, err := f.service.Register(ctx, registerRequest("a@x.com"))
	require.NoError(t, err)

	err = f.service.UpdateProfile(ctx, domain.UpdateProfileRequest{Name: "Bob"}, res.User.ID)
	require.NoError(t, err)

	me, err := f.service.Me(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", me.Name)
	assert.Equal(t, "a@x.com", me.Email)
}
