package validator

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	usernameTaken bool
	emailTaken    bool
	phoneTaken    bool
}

func (s *stubUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	return u, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (model.User, error) {
	return model.User{}, repository.ErrNotFound
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return model.User{}, repository.ErrNotFound
}

func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.usernameTaken, nil
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.emailTaken, nil
}

func (s *stubUserRepo) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return s.phoneTaken, nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return nil
}

func validInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:    "normal_user",
		Name:        "홍길동",
		Password:    "test123!",
		Password2:   "test123!",
		Email:       "user@example.com",
		PhoneNumber: "01012345678",
	}
}

func TestValidateRegisterOK(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	assert.NoError(t, v.ValidateRegister(context.Background(), validInput()))
}

// Test: 空の入力は全フィールド分のエラーを一度に返す
func TestValidateRegisterCollectsAllErrors(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	err := v.ValidateRegister(context.Background(), usecase.RegisterInput{})
	require.Error(t, err)

	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	for _, field := range []string{"username", "name", "password", "password2", "email", "phone_number"} {
		assert.Contains(t, ve.Fields[field], msgRequired, field)
	}
}

func TestValidateRegisterUsernameFormat(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	for _, username := range []string{"abc", "한글이름", "user name", "toooooooooooolong"} {
		in := validInput()
		in.Username = username

		err := v.ValidateRegister(context.Background(), in)
		require.Error(t, err, username)

		ve, ok := usecase.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields["username"], msgInvalidUsername, username)
	}
}

// Test: パスワードは8〜16文字で文字/数字/特殊文字を各1つ以上
func TestValidateRegisterPasswordRules(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	bad := []string{
		"test1!",            // 短すぎ
		"test123!test123!a", // 長すぎ
		"testtest!",         // 数字なし
		"12345678!",         // 文字なし
		"test1234",          // 特殊文字なし
	}
	for _, password := range bad {
		in := validInput()
		in.Password = password
		in.Password2 = password

		err := v.ValidateRegister(context.Background(), in)
		require.Error(t, err, password)

		ve, ok := usecase.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields["password"], msgInvalidPassword, password)
	}

	for _, password := range []string{"test123!", "Abcdef1@", "a1!a1!a1!a1!a1!a"} {
		in := validInput()
		in.Password = password
		in.Password2 = password

		assert.NoError(t, v.ValidateRegister(context.Background(), in), password)
	}
}

func TestValidateRegisterPasswordMismatch(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	in := validInput()
	in.Password2 = "test124!"

	err := v.ValidateRegister(context.Background(), in)
	require.Error(t, err)

	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields[usecase.NonFieldErrors], msgPasswordMismatch)
}

func TestValidateRegisterPhoneFormat(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	for _, phone := range []string{"010-1234-5678", "0123456789", "0101234", "021234567"} {
		in := validInput()
		in.PhoneNumber = phone

		err := v.ValidateRegister(context.Background(), in)
		require.Error(t, err, phone)

		ve, ok := usecase.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields["phone_number"], msgInvalidPhone, phone)
	}

	for _, phone := range []string{"01012345678", "0111234567", "01687654321"} {
		in := validInput()
		in.PhoneNumber = phone

		assert.NoError(t, v.ValidateRegister(context.Background(), in), phone)
	}
}

func TestValidateRegisterEmailFormat(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{})

	in := validInput()
	in.Email = "not-an-email"

	err := v.ValidateRegister(context.Background(), in)
	require.Error(t, err)

	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields["email"], msgInvalidEmail)
}

// Test: 重複はフィールドごとにuniqueエラー
func TestValidateRegisterUniqueness(t *testing.T) {
	v := NewUserValidator(&stubUserRepo{usernameTaken: true, emailTaken: true, phoneTaken: true})

	err := v.ValidateRegister(context.Background(), validInput())
	require.Error(t, err)

	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields["username"], msgUnique)
	assert.Contains(t, ve.Fields["email"], msgUnique)
	assert.Contains(t, ve.Fields["phone_number"], msgUnique)
}
