// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの生成と検証、パニックリカバリ、CORS設定など、
// kidshub APIの全ルートで共通して使用するミドルウェアを含む。
package middleware
