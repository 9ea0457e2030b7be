package auth

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

const (
	defaultTokenName = "login-token"
	defaultTTLDays   = 30
	maxTTLDays       = 3650
)

// handlerからusecaseに渡す入力。
// EmailとPhoneはどちらか一方でよく、両方あればEmailを使う。
type LoginInput struct {
	Email         string
	Phone         string
	Password      string
	TokenName     string
	ExpiresInDays int
}

// handlerがJSONにして返す
type LoginOutput struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt *time.Time `json:"expires_at"`
	TokenID   int64      `json:"token_id"`
	User      model.User `json:"user"`
}

// メール/電話またはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 有効期限（日数）が1..3650の外
var ErrInvalidTokenTTL = errors.New("invalid token ttl")

// 停止済みユーザー
var ErrUserBanned = errors.New("user is banned")

type LoginUsecase struct {
	userRepo repo.UserRepository
	tokens   *TokenService
	verifier PasswordVerifier
	clock    Clock
}

func NewLoginUsecase(
	userRepo repo.UserRepository,
	tokens *TokenService,
	verifier PasswordVerifier,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		verifier: verifier,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//email優先でユーザー取得
	var user model.User
	var err error
	switch {
	case in.Email != "":
		user, err = u.userRepo.FindByEmail(ctx, in.Email)
	case in.Phone != "":
		user, err = u.userRepo.FindByPhone(ctx, in.Phone)
	default:
		return out, ErrInvalidCredentials
	}
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	//停止ユーザーはログイン不可
	if user.IsBanned {
		return out, ErrUserBanned
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	//スコープはroleから決める。adminだけがadminスコープを持つ
	scopes := []string{model.ScopeBasic}
	if user.Role == model.RoleAdmin {
		scopes = append(scopes, model.ScopeAdmin)
	}

	ttlDays := in.ExpiresInDays
	if ttlDays == 0 {
		ttlDays = defaultTTLDays
	}
	if ttlDays < 1 || ttlDays > maxTTLDays {
		return out, ErrInvalidTokenTTL
	}

	name := in.TokenName
	if name == "" {
		name = defaultTokenName
	}

	plain, token, err := u.tokens.Issue(ctx, user.ID, name, scopes, ttlDays)
	if err != nil {
		return out, err
	}

	//最終ログイン時刻更新
	now := u.clock.Now()
	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, &user); err != nil {
		return out, err
	}

	out = LoginOutput{
		Token:     plain,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
		TokenID:   token.ID,
		User:      user,
	}
	return out, nil
}
