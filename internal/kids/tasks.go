package kids

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	kidsdb "github.com/kidshub/kidshub/internal/kids/db"
)

// taskResponse はタスクのJSONレスポンス構造。
type taskResponse struct {
	// ID はタスクの一意識別子。
	ID int64 `json:"id"`
	// Text はタスクの文言。
	Text string `json:"text"`
	// Done は完了済みかどうか。
	Done bool `json:"done"`
}

// toTaskResponses はDB行をJSONレスポンスに変換する。
func toTaskResponses(tasks []kidsdb.Task) []taskResponse {
	responses := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, taskResponse{
			ID:   t.ID,
			Text: t.Text,
			Done: t.Done,
		})
	}
	return responses
}

// handleListTasks は認証済みの子どものタスク一覧を返すハンドラを返す。
// 一覧はorder昇順でソートされる。同じorderのタスクは挿入順で返る。
func (s *Server) handleListTasks() gin.HandlerFunc {
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

		c.JSON(http.StatusOK, gin.H{"tasks": toTaskResponses(tasks)})
	}
}

// createTaskRequest はタスク作成リクエストのJSON構造。
type createTaskRequest struct {
	// Text はタスクの文言。
	Text string `json:"text" binding:"required"`
	// Order は表示順序。0を許容するためポインタで受ける。
	// 重複したorderも許容される（並びは挿入順で安定）。
	Order *int64 `json:"order" binding:"required"`
}

// handleCreateTask はタスク作成を処理するハンドラを返す。
// タスクは認証済みの子どもに紐づく。
func (s *Server) handleCreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		kid, ok := s.currentKid(c)
		if !ok {
			return
		}

		var req createTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		id, err := s.queries.CreateTask(c.Request.Context(), kidsdb.CreateTaskParams{
			KidID:        kid.ID,
			Text:         req.Text,
			DisplayOrder: *req.Order,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "タスクの作成に失敗しました"})
			log.Printf("タスク作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// updateTaskRequest はタスク更新リクエストのJSON構造。
type updateTaskRequest struct {
	// ID は更新対象タスクの一意識別子。
	ID int64 `json:"id" binding:"required"`
	// Done は完了済みかどうか。falseを許容するためポインタで受ける。
	Done *bool `json:"done" binding:"required"`
}

// handleUpdateTask はタスクの完了フラグ更新を処理するハンドラを返す。
// タスクはグローバルなIDで特定する。
// TODO: タスクが認証済みの子どもに属するか検証する（現状は所有権チェックなし）。
func (s *Server) handleUpdateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := s.currentKid(c); !ok {
			return
		}

		var req updateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		rows, err := s.queries.SetTaskDone(c.Request.Context(), kidsdb.SetTaskDoneParams{
			Done: *req.Done,
			ID:   req.ID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "タスクの更新に失敗しました"})
			log.Printf("タスク更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "タスクが見つかりません"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "タスクを更新しました"})
	}
}
