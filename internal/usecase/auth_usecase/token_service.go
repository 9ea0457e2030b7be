package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

const (
	tokenLength  = 64
	tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TokenServiceはAPIトークンの発行。
// 平文はIssueの戻り値としてだけ存在し、DBにはsha256ダイジェストのみ保存する。
type TokenService struct {
	tokenRepo repo.ApiTokenRepository
	clock     Clock
}

func NewTokenService(tokenRepo repo.ApiTokenRepository, clock Clock) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		clock:     clock,
	}
}

// Issueは新しいトークンを発行する。戻り値は（平文, 保存済みレコード, err）。
// digest衝突（事実上起きない）だけは引き直す。
func (s *TokenService) Issue(ctx context.Context, userID int64, name string, scopes []string, ttlDays int) (string, model.ApiToken, error) {
	expiresAt := s.clock.Now().AddDate(0, 0, ttlDays)

	var lastErr error
	for i := 0; i < 3; i++ {
		plain, err := generateToken(tokenLength)
		if err != nil {
			return "", model.ApiToken{}, err
		}

		token := model.ApiToken{
			UserID:    userID,
			TokenHash: HashToken(plain),
			Name:      name,
			Scopes:    scopes,
			ExpiresAt: &expiresAt,
		}

		err = s.tokenRepo.Create(ctx, &token)
		if err == nil {
			return plain, token, nil
		}
		if !errors.Is(err, repo.ErrDuplicate) {
			return "", model.ApiToken{}, err
		}
		lastErr = err
	}

	return "", model.ApiToken{}, lastErr
}

// HashTokenは平文トークンのsha256ダイジェスト（hex）。
// 照合側（認証ミドルウェア）もこれを使う。
func HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// 英数字だけのランダム文字列（OSが持つ安全な乱数）
func generateToken(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(tokenCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenCharset[n.Int64()]
	}
	return string(b), nil
}
