// Package migration はkidshubのSQLiteスキーマをバージョン管理する。
// embedされたSQLファイルを番号順に適用し、適用済みバージョンを
// schema_migrationsテーブルに記録する。
package migration

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strconv"
	"strings"
)

// Run は未適用のマイグレーションスクリプトを番号順に適用する。
// 適用済みのバージョンはスキップされるため、起動のたびに呼んでよい。
// ファイル名形式: 000001_description.up.sql
func Run(db *sql.DB, fsys fs.FS, dir string) error {
	if err := ensureVersionTable(db); err != nil {
		return fmt.Errorf("バージョン管理テーブルの初期化に失敗: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("適用済みバージョンの読み取りに失敗: %w", err)
	}

	scripts, err := loadScripts(fsys, dir)
	if err != nil {
		return fmt.Errorf("マイグレーションスクリプトの読み込みに失敗: %w", err)
	}

	for _, script := range scripts {
		if applied[script.version] {
			continue
		}

		if err := apply(db, fsys, script); err != nil {
			return fmt.Errorf("マイグレーション %06d_%s の適用に失敗: %w", script.version, script.name, err)
		}
		log.Printf("[migration] スキーマを %06d_%s に更新しました", script.version, script.name)
	}

	return nil
}

// migrationScript は1つのマイグレーションファイルのメタデータ。
type migrationScript struct {
	version int
	name    string
	path    string
}

// ensureVersionTable は適用済みバージョンを記録するテーブルを作成する。
func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

// appliedVersions は適用済みのバージョン番号の集合を返す。
func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// loadScripts はディレクトリからup.sqlファイルを集めてバージョン昇順に並べる。
// 番号の振られていないファイルとup.sql以外のファイルは無視する。
func loadScripts(fsys fs.FS, dir string) ([]migrationScript, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var scripts []migrationScript
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		prefix, rest, found := strings.Cut(entry.Name(), "_")
		if !found {
			continue
		}

		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		scripts = append(scripts, migrationScript{
			version: version,
			name:    strings.TrimSuffix(rest, ".up.sql"),
			path:    dir + "/" + entry.Name(),
		})
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].version < scripts[j].version
	})

	return scripts, nil
}

// apply は1つのスクリプトの実行とバージョン記録を同一トランザクションで行う。
// 途中で失敗した場合はロールバックされ、バージョンは記録されない。
func apply(db *sql.DB, fsys fs.FS, script migrationScript) error {
	content, err := fs.ReadFile(fsys, script.path)
	if err != nil {
		return fmt.Errorf("スクリプトの読み込みに失敗: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(string(content)); err != nil {
		return fmt.Errorf("SQL実行に失敗: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", script.version); err != nil {
		return fmt.Errorf("バージョン記録に失敗: %w", err)
	}

	return tx.Commit()
}
