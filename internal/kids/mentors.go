package kids

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	kidsdb "github.com/kidshub/kidshub/internal/kids/db"
)

// mentorResponse はメンター一覧のJSONレスポンス構造。
type mentorResponse struct {
	// ID はメンターの一意識別子。
	ID int64 `json:"id"`
	// Name はメンターの氏名。
	Name string `json:"name"`
	// Photo はメンター写真のファイル名。未設定ならnull。
	Photo *string `json:"photo"`
	// Position はメンターの肩書き。
	Position string `json:"position"`
	// Bio はメンターの自己紹介文。
	Bio string `json:"bio"`
	// Expertises はメンターに紐づく専門分野タグ名の一覧。
	Expertises []string `json:"expertises"`
}

// handleListMentors はメンター一覧を専門分野付きで返すハンドラを返す。
func (s *Server) handleListMentors() gin.HandlerFunc {
	return func(c *gin.Context) {
		mentors, err := s.queries.ListMentors(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "メンター一覧の取得に失敗しました"})
			log.Printf("メンター一覧取得エラー: %v", err)
			return
		}

		responses := make([]mentorResponse, 0, len(mentors))
		for _, m := range mentors {
			expertises, err := s.queries.ListMentorExpertiseNames(c.Request.Context(), m.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "専門分野の取得に失敗しました"})
				log.Printf("専門分野取得エラー: %v", err)
				return
			}
			if expertises == nil {
				expertises = []string{}
			}
			responses = append(responses, mentorResponse{
				ID:         m.ID,
				Name:       m.Name,
				Photo:      fromNullString(m.Photo),
				Position:   m.Position,
				Bio:        m.Bio,
				Expertises: expertises,
			})
		}

		c.JSON(http.StatusOK, gin.H{"mentors": responses})
	}
}

// createMentorRequest はメンター作成リクエストのJSON構造。
type createMentorRequest struct {
	// Name はメンターの氏名。
	Name string `json:"name" binding:"required"`
	// Photo はメンター写真のファイル名。
	Photo *string `json:"photo"`
	// Position はメンターの肩書き。
	Position string `json:"position" binding:"required"`
	// Bio はメンターの自己紹介文。
	Bio string `json:"bio" binding:"required"`
}

// handleCreateMentor はメンター作成を処理するハンドラを返す。
func (s *Server) handleCreateMentor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMentorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		id, err := s.queries.CreateMentor(c.Request.Context(), kidsdb.CreateMentorParams{
			Name:     req.Name,
			Photo:    toNullString(req.Photo),
			Position: req.Position,
			Bio:      req.Bio,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "メンターの作成に失敗しました"})
			log.Printf("メンター作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// addExpertisesRequest は専門分野追加リクエストのJSON構造。
type addExpertisesRequest struct {
	// ID は対象メンターの一意識別子。
	ID int64 `json:"id" binding:"required"`
	// Expertises は紐づけるタグ名の一覧。
	Expertises []string `json:"expertises" binding:"required"`
}

// handleAddExpertises はメンターへの専門分野タグ紐づけを処理するハンドラを返す。
// 未登録のタグ名は無視する。同じタグの重複紐づけは冪等。リクエスト内の
// 全タグをひとつのトランザクションで追加する。
func (s *Server) handleAddExpertises() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addExpertisesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		mentor, err := s.queries.GetMentorByID(c.Request.Context(), req.ID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "メンターが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "メンターの取得に失敗しました"})
			log.Printf("メンター取得エラー: %v", err)
			return
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "専門分野の追加に失敗しました"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		for _, name := range req.Expertises {
			tag, err := qtx.GetTagByName(c.Request.Context(), name)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "タグの取得に失敗しました"})
				log.Printf("タグ取得エラー: %v", err)
				return
			}
			if err := qtx.AddMentorExpertise(c.Request.Context(), kidsdb.AddMentorExpertiseParams{
				MentorID: mentor.ID,
				TagID:    tag.ID,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "専門分野の追加に失敗しました"})
				log.Printf("専門分野追加エラー: %v", err)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "専門分野の追加に失敗しました"})
			log.Printf("コミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "専門分野を追加しました"})
	}
}

// likeMentorRequest はメンターお気に入り登録リクエストのJSON構造。
type likeMentorRequest struct {
	// ID はお気に入りにするメンターの一意識別子。
	ID int64 `json:"id" binding:"required"`
}

// handleLikeMentor は子どもによるメンターのお気に入り登録を処理するハンドラを返す。
// 同じメンターへの重複登録は冪等。
func (s *Server) handleLikeMentor() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req likeMentorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		mentor, err := s.queries.GetMentorByID(c.Request.Context(), req.ID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "メンターが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "メンターの取得に失敗しました"})
			log.Printf("メンター取得エラー: %v", err)
			return
		}

		if err := s.queries.AddKidLike(c.Request.Context(), kidsdb.AddKidLikeParams{
			KidID:    kid.ID,
			MentorID: mentor.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "お気に入り登録に失敗しました"})
			log.Printf("お気に入り登録エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "メンターをお気に入りに登録しました"})
	}
}

// handleMentorReady はメンターシップ待ち状態への遷移を処理するハンドラを返す。
// waitingへの前進遷移を行う。ポイントの再チェックはしない。
// 既にwaiting以降の場合は何もせず現状態を返す。
func (s *Server) handleMentorReady() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		current := MentorshipState(kid.Mentorship)
		next := current.Advance(MentorshipWaiting)
		if next != current {
			if err := s.queries.UpdateKidMentorship(c.Request.Context(), kidsdb.UpdateKidMentorshipParams{
				Mentorship: string(next),
				ID:         kid.ID,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "メンターシップ状態の更新に失敗しました"})
				log.Printf("メンターシップ更新エラー: %v", err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"mentorship": string(next)})
	}
}
