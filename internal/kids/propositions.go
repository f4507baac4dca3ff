package kids

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	kidsdb "github.com/kidshub/kidshub/internal/kids/db"
)

// propositionSummary は特典一覧のJSONレスポンス構造。
// contentは一覧では決して返さない。
type propositionSummary struct {
	// ID は特典の一意識別子。
	ID int64 `json:"id"`
	// Title は特典のタイトル。
	Title string `json:"title"`
	// Image は特典画像のファイル名。未設定ならnull。
	Image *string `json:"image"`
	// Points は交換に必要なポイント数。
	Points int64 `json:"points"`
}

// handleListPropositions は特典カタログの一覧を返すハンドラを返す。
// 要約フィールドのみを返し、content（交換コード等）は含めない。
func (s *Server) handleListPropositions() gin.HandlerFunc {
	return func(c *gin.Context) {
		propositions, err := s.queries.ListPropositions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "特典一覧の取得に失敗しました"})
			log.Printf("特典一覧取得エラー: %v", err)
			return
		}

		summaries := make([]propositionSummary, 0, len(propositions))
		for _, p := range propositions {
			summaries = append(summaries, propositionSummary{
				ID:     p.ID,
				Title:  p.Title,
				Image:  fromNullString(p.Image),
				Points: p.PointsRequired,
			})
		}

		c.JSON(http.StatusOK, gin.H{"propositions": summaries})
	}
}

// createPropositionRequest は特典作成リクエストのJSON構造。
type createPropositionRequest struct {
	// Title は特典のタイトル。
	Title string `json:"title" binding:"required"`
	// Description は特典の説明。
	Description *string `json:"description"`
	// Image は特典画像のファイル名。
	Image *string `json:"image"`
	// PointsRequired はcontent閲覧に必要なポイント数。
	PointsRequired int64 `json:"points_required"`
	// Type は特典の種類。省略時は"code"。
	Type string `json:"type"`
	// Content はポイント条件を満たした場合のみ開示される本体（交換コード等）。
	Content string `json:"content" binding:"required"`
}

// handleCreateProposition は特典作成を処理するハンドラを返す。
func (s *Server) handleCreateProposition() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPropositionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		propositionType := req.Type
		if propositionType == "" {
			propositionType = "code"
		}

		id, err := s.queries.CreateProposition(c.Request.Context(), kidsdb.CreatePropositionParams{
			Title:          req.Title,
			Description:    toNullString(req.Description),
			Image:          toNullString(req.Image),
			PointsRequired: req.PointsRequired,
			Type:           propositionType,
			Content:        req.Content,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "特典の作成に失敗しました"})
			log.Printf("特典作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// cardRequest は特典カード取得リクエストのJSON構造。
type cardRequest struct {
	// ID は取得対象の特典の一意識別子。
	ID int64 `json:"id"`
}

// cardResponse は特典カードのJSONレスポンス構造。
type cardResponse struct {
	// Title は特典のタイトル。
	Title string `json:"title"`
	// Image は特典画像のファイル名。未設定ならnull。
	Image *string `json:"image"`
	// Description は特典の説明。未設定ならnull。
	Description *string `json:"description"`
	// Type は特典の種類。
	Type string `json:"type"`
	// Points は交換に必要なポイント数。
	Points int64 `json:"points"`
	// Content はポイント条件を満たした場合のみ含まれる本体。
	Content *string `json:"content,omitempty"`
}

// handlePropositionCard は特典カードの詳細取得を処理するハンドラを返す。
// contentは認証済みの子どもの残高がpoints_required以上の場合のみ含める
// （ちょうど等しい場合も開示する）。IDはJSONボディから受け取り、
// GETでボディを送れないクライアント向けにクエリパラメータidも受け付ける。
func (s *Server) handlePropositionCard() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req cardRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
			idStr := c.Query("id")
			if idStr == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "特典IDが指定されていません"})
				return
			}
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "特典IDが不正です"})
				return
			}
			req.ID = id
		}

		proposition, err := s.queries.GetPropositionByID(c.Request.Context(), req.ID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "特典が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "特典の取得に失敗しました"})
			log.Printf("特典取得エラー: %v", err)
			return
		}

		card := cardResponse{
			Title:       proposition.Title,
			Image:       fromNullString(proposition.Image),
			Description: fromNullString(proposition.Description),
			Type:        proposition.Type,
			Points:      proposition.PointsRequired,
		}
		if kid.Points >= proposition.PointsRequired {
			card.Content = &proposition.Content
		}

		c.JSON(http.StatusOK, gin.H{"proposition": card})
	}
}
