package kids

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	kidsdb "github.com/kidshub/kidshub/internal/kids/db"
	"github.com/kidshub/kidshub/pkg/middleware"
)

// defaultPoints は登録時に付与される初期ポイント。
const defaultPoints = 100

// createKidRequest は子ども登録リクエストのJSON構造。
type createKidRequest struct {
	// AccountID はゲーム側アカウントの一意識別子。
	AccountID string `json:"account_id" binding:"required"`
	// Name は子どもの名前。
	Name string `json:"name" binding:"required"`
	// BirthDate は生年月日（文字列、例: "2014-05-01"）。
	BirthDate string `json:"birth_date" binding:"required"`
	// PhoneNumber は保護者の電話番号。初回ログイン時に束縛される場合もある。
	PhoneNumber *string `json:"phone_number"`
	// Goal は子どもの目標。未設定ならオンボーディング対象。
	Goal *string `json:"goal"`
	// Avatar はアバター画像のファイル名。
	Avatar *string `json:"avatar"`
	// Points は初期ポイント。省略時は100。
	Points *int64 `json:"points"`
}

// handleCreateKid は子どもの登録を処理するハンドラを返す。
// account_idまたはphone_numberが既存レコードと重複する場合は400を返す。
func (s *Server) handleCreateKid() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createKidRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		points := int64(defaultPoints)
		if req.Points != nil {
			points = *req.Points
		}

		id, err := s.queries.CreateKid(c.Request.Context(), kidsdb.CreateKidParams{
			AccountID:   req.AccountID,
			PhoneNumber: toNullString(req.PhoneNumber),
			Name:        req.Name,
			BirthDate:   req.BirthDate,
			Goal:        toNullString(req.Goal),
			Points:      points,
			Avatar:      toNullString(req.Avatar),
		})
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "account_idまたはphone_numberが既に登録されています"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "子どもの登録に失敗しました"})
			log.Printf("子ども登録エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// PhoneNumber は保護者の電話番号。
	PhoneNumber string `json:"phone_number" binding:"required"`
	// AccountID はゲーム側アカウントの一意識別子。
	AccountID string `json:"account_id" binding:"required"`
}

// handleLogin はログインを処理するハンドラを返す。
// account_idで子どもを特定し、電話番号が未束縛なら初回のみ束縛する。
// 2回目以降のログインで別の番号が来ても保存済みの番号は変更しない。
// registerは目標が未設定（オンボーディング未完了）かどうかを示す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		kid, err := s.queries.GetKidByAccountID(c.Request.Context(), req.AccountID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "アカウントが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの取得に失敗しました"})
			log.Printf("ログインエラー: %v", err)
			return
		}

		if !kid.PhoneNumber.Valid {
			if err := s.queries.BindKidPhoneNumber(c.Request.Context(), kidsdb.BindKidPhoneNumberParams{
				PhoneNumber: sql.NullString{String: req.PhoneNumber, Valid: true},
				ID:          kid.ID,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "電話番号の登録に失敗しました"})
				log.Printf("電話番号束縛エラー: %v", err)
				return
			}
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, kid.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークン生成に失敗しました"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"register": !kid.Goal.Valid,
		})
	}
}

// profileResponse はプロフィール投影のJSONレスポンス構造。
type profileResponse struct {
	// AccountID はゲーム側アカウントの一意識別子。
	AccountID string `json:"account_id"`
	// Goal は子どもの目標。未設定ならnull。
	Goal *string `json:"goal"`
	// Tasks は目標を分解したタスクの一覧（order昇順）。
	Tasks []taskResponse `json:"tasks"`
	// Interests は興味タグ名の一覧。
	Interests []string `json:"interests"`
	// Name は子どもの名前。
	Name string `json:"name"`
	// Points は現在のポイント残高。
	Points int64 `json:"points"`
	// Avatar はアバター画像のファイル名。未設定ならnull。
	Avatar *string `json:"avatar"`
	// Mentorship はメンターシップの進行状態。
	Mentorship string `json:"mentorship"`
}

// handleProfile は認証済みの子どものプロフィール投影を返すハンドラを返す。
func (s *Server) handleProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		tasks, err := s.queries.ListKidTasks(c.Request.Context(), kid.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "タスク一覧の取得に失敗しました"})
			log.Printf("タスク一覧取得エラー: %v", err)
			return
		}

		interests, err := s.queries.ListKidInterestNames(c.Request.Context(), kid.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "興味タグの取得に失敗しました"})
			log.Printf("興味タグ取得エラー: %v", err)
			return
		}
		if interests == nil {
			interests = []string{}
		}

		c.JSON(http.StatusOK, gin.H{"profile": profileResponse{
			AccountID:  kid.AccountID,
			Goal:       fromNullString(kid.Goal),
			Tasks:      toTaskResponses(tasks),
			Interests:  interests,
			Name:       kid.Name,
			Points:     kid.Points,
			Avatar:     fromNullString(kid.Avatar),
			Mentorship: kid.Mentorship,
		}})
	}
}

// goalRequest は目標設定リクエストのJSON構造。
type goalRequest struct {
	// Goal は子どもの目標の文言。
	Goal string `json:"goal" binding:"required"`
}

// handleSetGoal は目標設定を処理するハンドラを返す。
// clearTasksがtrue（POST）の場合は目標の置き換えとして既存タスクを全削除する。
// false（PUT）の場合は目標の文言だけを更新し、タスクには触れない。
func (s *Server) handleSetGoal(clearTasks bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req goalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		// タスク削除と目標更新をひとつのトランザクションで行う。
		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "目標の更新に失敗しました"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		if clearTasks {
			if err := qtx.DeleteKidTasks(c.Request.Context(), kid.ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "既存タスクの削除に失敗しました"})
				log.Printf("タスク削除エラー: %v", err)
				return
			}
		}

		if err := qtx.UpdateKidGoal(c.Request.Context(), kidsdb.UpdateKidGoalParams{
			Goal: sql.NullString{String: req.Goal, Valid: true},
			ID:   kid.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "目標の更新に失敗しました"})
			log.Printf("目標更新エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "目標の更新に失敗しました"})
			log.Printf("コミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "目標を更新しました"})
	}
}

// avatarRequest はアバター設定リクエストのJSON構造。
type avatarRequest struct {
	// Avatar はアバター画像のファイル名。
	Avatar string `json:"avatar" binding:"required"`
}

// handleSetAvatar はアバター設定を処理するハンドラを返す。
func (s *Server) handleSetAvatar() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req avatarRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if err := s.queries.UpdateKidAvatar(c.Request.Context(), kidsdb.UpdateKidAvatarParams{
			Avatar: sql.NullString{String: req.Avatar, Valid: true},
			ID:     kid.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アバターの更新に失敗しました"})
			log.Printf("アバター更新エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "アバターを更新しました"})
	}
}

// interestsRequest は興味タグ追加リクエストのJSON構造。
type interestsRequest struct {
	// Interests は追加する興味タグ名の一覧。
	Interests []string `json:"interests" binding:"required"`
}

// handleAddInterests は興味タグの追加を処理するハンドラを返す。
// 存在しないタグ名はエラーにせずスキップする。既に付与済みのタグは
// 複合主キーにより重複登録されない。リクエスト内の全タグをひとつの
// トランザクションで追加し、途中で失敗した場合は何も追加されない。
func (s *Server) handleAddInterests() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req interestsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "興味タグの追加に失敗しました"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		for _, name := range req.Interests {
			tag, err := qtx.GetTagByName(c.Request.Context(), name)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "タグの取得に失敗しました"})
				log.Printf("タグ取得エラー: %v", err)
				return
			}

			if err := qtx.AddKidInterest(c.Request.Context(), kidsdb.AddKidInterestParams{
				KidID: kid.ID,
				TagID: tag.ID,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "興味タグの追加に失敗しました"})
				log.Printf("興味タグ追加エラー: %v", err)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "興味タグの追加に失敗しました"})
			log.Printf("コミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "興味タグを追加しました"})
	}
}

// addPointsRequest はポイント加算リクエストのJSON構造。
type addPointsRequest struct {
	// AccountID は加算対象のゲーム側アカウントID。
	AccountID string `json:"account_id" binding:"required"`
	// Amount は加算するポイント数。負値で減算。
	Amount int64 `json:"amount"`
}

// handleAddPoints はポイント加算を処理するハンドラを返す。
// 認証トークンではなくaccount_idで対象を特定する。ゲームマスター等の
// 信頼された内部呼び出し元（cmd/pointsctl）から使用される想定。
// 残高が閾値に到達するとメンターシップ状態を自動で前進させる。
// 状態は一度前進したら残高が閾値を下回っても後退しない。
func (s *Server) handleAddPoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addPointsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		kid, err := s.queries.GetKidByAccountID(c.Request.Context(), req.AccountID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "アカウントが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの取得に失敗しました"})
			log.Printf("ポイント加算エラー: %v", err)
			return
		}

		newPoints := kid.Points + req.Amount
		newState := mentorshipAfterPoints(MentorshipState(kid.Mentorship), newPoints)

		if err := s.queries.UpdateKidPoints(c.Request.Context(), kidsdb.UpdateKidPointsParams{
			Points:     newPoints,
			Mentorship: string(newState),
			ID:         kid.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ポイントの更新に失敗しました"})
			log.Printf("ポイント更新エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"points":     newPoints,
			"mentorship": string(newState),
		})
	}
}
