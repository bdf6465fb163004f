package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	stored      model.User
	hasUser     bool
	lastLoginAt *time.Time
}

func (f *fakeUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	u.ID = 1
	f.stored = u
	f.hasUser = true
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (model.User, error) {
	if !f.hasUser || f.stored.ID != id {
		return model.User{}, repo.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	if !f.hasUser || f.stored.Username != username {
		return model.User{}, repo.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return f.hasUser && f.stored.Username == username, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.hasUser && f.stored.Email == email, nil
}

func (f *fakeUserRepo) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return f.hasUser && f.stored.PhoneNumber == phoneNumber, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	f.lastLoginAt = &at
	return nil
}

type passValidator struct{}

func (passValidator) ValidateRegister(ctx context.Context, in RegisterInput) error { return nil }

type failValidator struct{}

func (failValidator) ValidateRegister(ctx context.Context, in RegisterInput) error {
	return NewFieldError("username", "이 필드는 필수 항목입니다.")
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64, now time.Time) (string, time.Time, error) {
	return "token-abc", now.Add(15 * time.Minute), nil
}

func newAuthFixture(v RegisterValidator) (*AuthUsecase, *fakeUserRepo) {
	users := &fakeUserRepo{}
	clock := &fixedClock{t: time.Date(2022, 3, 5, 12, 30, 45, 0, time.UTC)}
	uc := NewAuthUsecase(
		users,
		v,
		NewBcryptPasswordHasher(bcrypt.MinCost),
		NewBcryptPasswordVerifier(),
		fakeIssuer{},
		clock,
	)
	return uc, users
}

func registerTestUser(t *testing.T, uc *AuthUsecase) UserOutput {
	t.Helper()
	out, err := uc.Register(context.Background(), RegisterInput{
		Username:    "normal_user",
		Name:        "홍길동",
		Password:    "test123!",
		Password2:   "test123!",
		Email:       "user@example.com",
		PhoneNumber: "01012345678",
	})
	require.NoError(t, err)
	return out
}

// Test: 登録はハッシュを保存して平文を持ち出さない
func TestRegisterHashesPassword(t *testing.T) {
	uc, users := newAuthFixture(passValidator{})

	out := registerTestUser(t, uc)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "normal_user", out.Username)
	assert.True(t, out.IsActive)

	assert.NotEqual(t, "test123!", users.stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.stored.PasswordHash), []byte("test123!")))
}

// Test: バリデーションエラーはそのまま呼び出し元へ
func TestRegisterValidationErrorPassesThrough(t *testing.T) {
	uc, users := newAuthFixture(failValidator{})

	_, err := uc.Register(context.Background(), RegisterInput{})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "username")
	assert.False(t, users.hasUser)
}

// Test: ログイン成功でトークンとlast_login更新
func TestLoginIssuesToken(t *testing.T) {
	uc, users := newAuthFixture(passValidator{})
	registerTestUser(t, uc)

	out, err := uc.Login(context.Background(), LoginInput{Username: "normal_user", Password: "test123!"})
	require.NoError(t, err)

	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
	require.NotNil(t, users.lastLoginAt)
	assert.Equal(t, time.Date(2022, 3, 5, 12, 30, 45, 0, time.UTC), *users.lastLoginAt)
}

// Test: パスワード違いと未知のユーザーは同じ401
func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _ := newAuthFixture(passValidator{})
	registerTestUser(t, uc)

	_, err := uc.Login(context.Background(), LoginInput{Username: "normal_user", Password: "wrong123!"})
	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assert.Equal(t, "아이디 또는 비밀번호가 올바르지 않습니다.", he.Message)

	_, err = uc.Login(context.Background(), LoginInput{Username: "no_such_user", Password: "test123!"})
	require.Error(t, err)
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

// Test: 無効化されたアカウントではログインできない
func TestLoginRejectsInactiveUser(t *testing.T) {
	uc, users := newAuthFixture(passValidator{})
	registerTestUser(t, uc)
	users.stored.IsActive = false

	_, err := uc.Login(context.Background(), LoginInput{Username: "normal_user", Password: "test123!"})
	require.Error(t, err)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

// Test: username/passwordの欠落はnon_field_errors
func TestLoginRequiresCredentials(t *testing.T) {
	uc, _ := newAuthFixture(passValidator{})

	_, err := uc.Login(context.Background(), LoginInput{Username: "normal_user"})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields[NonFieldErrors], "username과 password를 입력 해주세요.")
}
