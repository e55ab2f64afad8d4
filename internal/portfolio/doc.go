// Package portfolio は写真ポートフォリオサイトのバックエンドAPIを提供する。
//
// 掲載サービス（撮影メニュー）とレビュー（依頼者のフィードバック）の
// CRUD操作をHTTPで公開する。書き込み系と本人のレビュー一覧の取得は
// JWTによる認可を必要とし、レビュー一覧はトークンのemailクレームと
// 一致する所有者のものだけに絞り込まれる。
package portfolio
