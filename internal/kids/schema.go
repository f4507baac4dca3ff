package kids

import (
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kidshub/kidshub/pkg/migration"
)

// migrationsFS はスキーママイグレーションのSQLファイル。
// db/kids/schema.sql と同期すること。
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// openDB はSQLiteデータベースを開き、PRAGMAとマイグレーションを適用する。
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	pragmas := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA busy_timeout=5000;`,
		`PRAGMA foreign_keys=ON;`,
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("PRAGMA適用に失敗: %w", err)
		}
	}

	if err := migration.Run(db, migrationsFS, "migrations"); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}
	return db, nil
}
