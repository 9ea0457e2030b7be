package model

import "time"

const (
	ScopeBasic = "basic"
	ScopeAdmin = "admin"
)

// APIトークン。平文は保存しない（token_hashのみ）。
// 失効はis_revoked（物理削除しない）。
type ApiToken struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64    `gorm:"not null;index" json:"user_id"`
	TokenHash string   `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	Name      string   `gorm:"type:varchar(255)" json:"name"`
	Scopes    []string `gorm:"serializer:json;type:text" json:"scopes"`

	//nullなら無期限
	ExpiresAt *time.Time `gorm:"index" json:"expires_at"`

	IsRevoked  bool       `gorm:"not null;default:false" json:"is_revoked"`
	LastUsedAt *time.Time `json:"last_used_at"`
	SourceIP   string     `gorm:"type:varchar(45)" json:"source_ip"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 未失効かつ未期限切れのときだけ使える
func (t ApiToken) Usable(now time.Time) bool {
	if t.IsRevoked {
		return false
	}
	if t.ExpiresAt != nil && !t.ExpiresAt.After(now) {
		return false
	}
	return true
}

func (t ApiToken) HasScope(scope string) bool {
	for _, s := range t.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
