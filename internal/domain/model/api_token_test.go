package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestApiTokenUsable(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	//期限なしは使える
	assert.True(t, ApiToken{}.Usable(now))
	//期限が未来なら使える
	assert.True(t, ApiToken{ExpiresAt: &future}.Usable(now))
	//期限切れは使えない
	assert.False(t, ApiToken{ExpiresAt: &past}.Usable(now))
	//ちょうど期限時刻も使えない
	assert.False(t, ApiToken{ExpiresAt: &now}.Usable(now))
	//失効済みは期限が残っていても使えない
	assert.False(t, ApiToken{IsRevoked: true, ExpiresAt: &future}.Usable(now))
}

func TestApiTokenHasScope(t *testing.T) {
	tok := ApiToken{Scopes: []string{ScopeBasic}}

	assert.True(t, tok.HasScope(ScopeBasic))
	assert.False(t, tok.HasScope(ScopeAdmin))
}

func TestProductCurrentPrice(t *testing.T) {
	p := Product{}
	p.Price = dec("100")

	//sale_priceなしは通常価格
	assert.True(t, p.CurrentPrice().Equal(dec("100")))

	//sale_priceが正ならそちら
	p.SalePrice = dec("80")
	assert.True(t, p.CurrentPrice().Equal(dec("80")))
}
