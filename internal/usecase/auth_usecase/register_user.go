package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// 会員登録の入力
type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidRole        = errors.New("invalid role")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repo.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	// emailの形式チェック
	if !isValidEmailFormat(in.Email) {
		return out, ErrInvalidEmailFormat
	}

	// passwordの長さチェック（最小8文字）
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(in.Password) {
		return out, ErrWeakPassword
	}

	// roleは既知の値のみ。未指定はcustomer
	role := model.Role(in.Role)
	if role == "" {
		role = model.RoleCustomer
	}
	switch role {
	case model.RoleCustomer, model.RoleVendor, model.RoleAdmin, model.RoleDeliveryBoy:
	default:
		return out, ErrInvalidRole
	}

	// email重複チェック
	_, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return out, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		Role:         role,
	}

	// DBへ保存。事前チェックとCreateの間に同じemailが入った場合もここで拾う
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	out.User = *user
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// よくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":    {},
		"password1":   {},
		"password123": {},
		"12345678":    {},
		"123456789":   {},
		"1234567890":  {},
		"qwertyuiop":  {},
		"letmein1":    {},
		"admin123":    {},
	}

	_, ok := weak[normalized]
	return ok
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
