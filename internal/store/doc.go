// Package store はドキュメントストアへのアクセス層を提供する。
//
// スキーマレスなドキュメントの挿入・検索・部分更新・削除を行う
// Collectionインターフェースと、その MongoDB 実装およびテスト用の
// インメモリ実装を含む。一覧取得は常に挿入の新しい順で返す。
package store
