// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWTトークンの発行と検証、CORS設定、パニックリカバリ、
// リクエストID付与など、サーバー全体で共通して使用するミドルウェアを含む。
package middleware
