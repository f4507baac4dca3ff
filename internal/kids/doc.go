// Package kids はkidshub APIサーバーの内部実装を提供する。
//
// 子どもの登録・ログイン・プロフィール管理、目標とタスクの管理、
// タグ（興味・専門分野）、特典カタログ（プロポジション）、
// メンターとのマッチング状態、ポイント加算の各エンドポイントを含む。
// すべての永続状態はSQLiteに保存し、各リクエストは単一のDB操作
// （または1トランザクション）で完結する。
package kids
