package kids

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleSearchTags はタグの前方一致検索を処理するハンドラを返す。
// クエリパラメータtagを接頭辞として大文字小文字を無視して照合する。
// 接頭辞が空の場合は全タグを返す。
func (s *Server) handleSearchTags() gin.HandlerFunc {
	return func(c *gin.Context) {
		prefix := strings.ToLower(c.Query("tag"))

		names, err := s.queries.ListTagNames(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "タグ一覧の取得に失敗しました"})
			log.Printf("タグ一覧取得エラー: %v", err)
			return
		}

		matched := make([]string, 0, len(names))
		for _, name := range names {
			if strings.HasPrefix(strings.ToLower(name), prefix) {
				matched = append(matched, name)
			}
		}

		c.JSON(http.StatusOK, gin.H{"tags": matched})
	}
}

// createTagRequest はタグ作成リクエストのJSON構造。
type createTagRequest struct {
	// Tag は作成するタグ名。全体で一意。
	Tag string `json:"tag" binding:"required"`
}

// handleCreateTag はタグ作成を処理するハンドラを返す。
// タグ名はUNIQUE制約で全体一意。重複時は400を返す。
func (s *Server) handleCreateTag() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		id, err := s.queries.CreateTag(c.Request.Context(), req.Tag)
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "同名のタグが既に存在します"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "タグの作成に失敗しました"})
			log.Printf("タグ作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
