package store

import (
	"context"
	"errors"
)

// ErrNotFound は指定されたIDのドキュメントが存在しないことを示す。
var ErrNotFound = errors.New("ドキュメントが見つかりません")

// Document はスキーマレスなドキュメント。
// キーはフィールド名、値は任意のJSON互換値。ストアが採番した識別子は
// "_id" フィールドに文字列として格納される。
type Document map[string]any

// UpdateResult は部分更新（upsert）の結果。
type UpdateResult struct {
	// MatchedCount は条件に一致した既存ドキュメント数。
	MatchedCount int64 `json:"matched_count"`
	// ModifiedCount は実際に変更されたドキュメント数。
	ModifiedCount int64 `json:"modified_count"`
	// UpsertedID は新規作成された場合のドキュメントID。既存更新の場合は空文字列。
	UpsertedID string `json:"upserted_id,omitempty"`
}

// Collection はドキュメントコレクションへの操作を定義する。
// 一覧取得の順序は挿入の新しい順（挿入順の逆順）で安定している。
type Collection interface {
	// Insert はドキュメントを挿入し、採番された識別子を返す。
	Insert(ctx context.Context, doc Document) (string, error)
	// FindByID は識別子でドキュメントを1件取得する。
	// 存在しない場合はErrNotFoundを返す。
	FindByID(ctx context.Context, id string) (Document, error)
	// List はフィルタに一致するドキュメントを挿入の新しい順で返す。
	// フィルタは全フィールドの等価一致。limitが0以下の場合は無制限。
	List(ctx context.Context, filter Document, limit int64) ([]Document, error)
	// SetFields は識別子で指定したドキュメントのフィールドを置き換える。
	// ドキュメントが存在しない場合は新規作成する（upsert）。
	SetFields(ctx context.Context, id string, fields Document) (UpdateResult, error)
	// DeleteByID は識別子でドキュメントを削除し、削除件数を返す。
	DeleteByID(ctx context.Context, id string) (int64, error)
}
