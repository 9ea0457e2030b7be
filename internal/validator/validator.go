package validator

import "regexp"

// FieldErrorsはフィールド名→エラーメッセージ群。
// 422レスポンスのerrorsにそのまま入る形。
type FieldErrors map[string][]string

func (e FieldErrors) Add(field string, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
