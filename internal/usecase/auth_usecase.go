package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ハッシュと平文の照合
type PasswordVerifier interface {
	Verify(hashed string, plain string) bool
}

// アクセストークンを発行する約束
type TokenIssuer interface {
	Issue(userID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 登録入力のフィールド検証（重複チェック込み）。
// エラーは全フィールド分まとめて返す。
type RegisterValidator interface {
	ValidateRegister(ctx context.Context, in RegisterInput) error
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hashed string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type AuthUsecase struct {
	users     repo.UserRepository
	validator RegisterValidator
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    TokenIssuer
	clock     Clock
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	validator RegisterValidator,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		validator: validator,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

type RegisterInput struct {
	Username    string
	Name        string
	Password    string
	Password2   string
	Email       string
	PhoneNumber string
}

type UserOutput struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LoginInput struct {
	Username string
	Password string
}

type TokenOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// 会員登録
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	if err := u.validator.ValidateRegister(ctx, in); err != nil {
		return UserOutput{}, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	created, err := u.users.Create(ctx, model.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hashed,
		IsActive:     true,
	})
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserOutput(created), nil
}

// ログイン。成功したらlast_loginを更新してトークンを返す。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	if in.Username == "" || in.Password == "" {
		return TokenOutput{}, NewNonFieldError("username과 password를 입력 해주세요.")
	}

	user, err := u.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, repo.ErrNotFound) {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다.")
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !user.IsActive || !u.verifier.Verify(user.PasswordHash, in.Password) {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다.")
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, now)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TokenOutput{
		AccessToken: token,
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

func toUserOutput(u model.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
