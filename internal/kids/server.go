package kids

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	kidsdb "github.com/kidshub/kidshub/internal/kids/db"
	"github.com/kidshub/kidshub/pkg/middleware"
)

// Server はkidshub APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *kidsdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
	// uploadDir はアップロード画像の保存先ディレクトリ。
	uploadDir string
}

// NewServer は新しいkidshubサーバーを生成する。
// SQLiteデータベースの初期化、マイグレーション適用、
// 画像保存ディレクトリの作成を行う。
func NewServer(port string) (*Server, error) {
	sqlDB, err := openDB(getEnvOr("KIDSHUB_DB", "/data/kidshub.db"))
	if err != nil {
		return nil, err
	}

	uploadDir := getEnvOr("UPLOAD_DIR", "/data/uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("画像保存ディレクトリの作成に失敗: %w", err)
	}

	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:3000")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))

	// マルチパートフォームの最大メモリを設定する。
	router.MaxMultipartMemory = maxUploadSize

	s := &Server{
		router:    router,
		port:      port,
		queries:   kidsdb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: getEnvOr("JWT_SECRET", "dev-secret-key"),
		uploadDir: uploadDir,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証不要の公開エンドポイント
	s.router.POST("/kids", s.handleCreateKid())
	s.router.POST("/login", s.handleLogin())
	s.router.GET("/tags", s.handleSearchTags())
	s.router.POST("/tags", s.handleCreateTag())
	s.router.GET("/propositions", s.handleListPropositions())
	s.router.POST("/propositions", s.handleCreateProposition())
	s.router.GET("/mentors", s.handleListMentors())
	s.router.POST("/mentors", s.handleCreateMentor())
	s.router.POST("/mentors/expertises", s.handleAddExpertises())
	s.router.GET("/images", s.handleDownloadImage())
	s.router.POST("/images", s.handleUploadImage())

	// ゲームマスター等の信頼された内部呼び出し元向け。意図的に認証なし。
	s.router.POST("/kids/points/add", s.handleAddPoints())

	// 認証必須のエンドポイント
	authed := s.router.Group("")
	authed.Use(middleware.JWTAuth(s.jwtSecret))
	{
		authed.GET("/kids/profile", s.handleProfile())
		authed.POST("/kids/interests", s.handleAddInterests())
		// POSTは目標の置き換え（既存タスクを全削除）、PUTは目標文言のみ更新。
		authed.POST("/kids/goal", s.handleSetGoal(true))
		authed.PUT("/kids/goal", s.handleSetGoal(false))
		authed.POST("/kids/avatar", s.handleSetAvatar())
		authed.GET("/kids/goal/tasks", s.handleListTasks())
		authed.POST("/kids/goal/tasks", s.handleCreateTask())
		authed.PUT("/kids/goal/tasks", s.handleUpdateTask())
		authed.GET("/propositions/card", s.handlePropositionCard())
		authed.POST("/kids/mentor/like", s.handleLikeMentor())
		authed.POST("/kids/mentor/ready", s.handleMentorReady())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "kidshub"})
	})
}

// currentKid は認証済みの子どものレコードをDBから取得する。
// 取得に失敗した場合はエラーレスポンスを書き込み、okにfalseを返す。
func (s *Server) currentKid(c *gin.Context) (kidsdb.Kid, bool) {
	kidID := middleware.GetKidID(c)
	if kidID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "子どものIDが取得できません"})
		return kidsdb.Kid{}, false
	}

	kid, err := s.queries.GetKidByID(c.Request.Context(), kidID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "子どもが見つかりません"})
		return kidsdb.Kid{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "子どもの取得に失敗しました"})
		return kidsdb.Kid{}, false
	}
	return kid, true
}

// isUniqueViolation はUNIQUE制約違反によるエラーかどうかを判定する。
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// toNullString は*stringをsql.NullStringに変換する。nilはNULLになる。
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString はsql.NullStringを*stringに変換する。NULLはnilになる。
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
