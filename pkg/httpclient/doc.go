// Package httpclient はkidshub APIを呼び出すためのHTTPクライアントを提供する。
//
// pointsctlなどの管理ツールがAPIを呼び出す際に使用する。
// タイムアウトとJSONシリアライズの扱いを統一する。
package httpclient
