package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error

	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (model.User, error)

	//ログイン識別子から1件取得（emailが優先）。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByPhone(ctx context.Context, phone string) (model.User, error)

	//最終ログイン更新など
	Update(ctx context.Context, user *model.User) error
}
