package validator

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]{4,16}$`)
	phoneRe    = regexp.MustCompile(`^01(0|1|[6-9])\d{7,8}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	msgRequired         = "이 필드는 필수 항목입니다."
	msgUnique           = "이 필드는 고유(unique)해야 합니다."
	msgInvalidUsername  = "username은 영문 숫자 및 .-_ 의 특수문자만 사용 가능하고 4글자 이상 16글자 이하여야 합니다."
	msgInvalidPassword  = "8글자 이상 16글자 이하, 최소 하나씩의 문자/숫자/특수문자가 포함되어야 합니다."
	msgInvalidPhone     = "01000000000 의 형태로 입력 해주세요."
	msgInvalidEmail     = "유효한 이메일 주소를 입력하십시오."
	msgPasswordMismatch = "비밀번호가 일치하지 않습니다."
)

type userValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewUserValidator(users repository.UserRepository) usecase.RegisterValidator {
	return &userValidator{users: users}
}

// 会員登録の入力を検証。問題のあるフィールドを全部集めて1回で返す。
func (v *userValidator) ValidateRegister(ctx context.Context, in usecase.RegisterInput) error {
	ve := &usecase.ValidationError{}

	switch {
	case in.Username == "":
		ve.Add("username", msgRequired)
	case !usernameRe.MatchString(in.Username):
		ve.Add("username", msgInvalidUsername)
	}

	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", msgRequired)
	}

	switch {
	case in.Password == "":
		ve.Add("password", msgRequired)
	case !isValidPassword(in.Password):
		ve.Add("password", msgInvalidPassword)
	}

	switch {
	case in.Password2 == "":
		ve.Add("password2", msgRequired)
	case !isValidPassword(in.Password2):
		ve.Add("password2", msgInvalidPassword)
	}

	switch {
	case in.Email == "":
		ve.Add("email", msgRequired)
	case !emailRe.MatchString(in.Email):
		ve.Add("email", msgInvalidEmail)
	}

	switch {
	case in.PhoneNumber == "":
		ve.Add("phone_number", msgRequired)
	case !phoneRe.MatchString(in.PhoneNumber):
		ve.Add("phone_number", msgInvalidPhone)
	}

	if in.Password != "" && in.Password2 != "" && in.Password != in.Password2 {
		ve.Add(usecase.NonFieldErrors, msgPasswordMismatch)
	}

	// 形式が通ったフィールドだけ重複チェック（DBが必要）
	if _, ok := ve.Fields["username"]; !ok {
		exists, err := v.users.ExistsByUsername(ctx, in.Username)
		if err != nil {
			return usecase.NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if exists {
			ve.Add("username", msgUnique)
		}
	}
	if _, ok := ve.Fields["email"]; !ok {
		exists, err := v.users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return usecase.NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if exists {
			ve.Add("email", msgUnique)
		}
	}
	if _, ok := ve.Fields["phone_number"]; !ok {
		exists, err := v.users.ExistsByPhoneNumber(ctx, in.PhoneNumber)
		if err != nil {
			return usecase.NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if exists {
			ve.Add("phone_number", msgUnique)
		}
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// 8〜16文字で、文字・数字・特殊文字（!@#$%^&+=）を最低1つずつ。
// もとの定義は先読み正規表現だがRE2では書けないので走査で判定する。
func isValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("!@#$%^&+=", r):
			hasSpecial = true
		}
	}

	return hasLetter && hasDigit && hasSpecial
}
