package kids

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize はアップロード画像の最大サイズ（10MiB）。
var maxUploadSize int64 = 10 << 20

// handleUploadImage は画像アップロードを処理するハンドラを返す。
// マルチパートフォームのimageフィールドを受け取り、衝突しない
// ランダムなファイル名（UUID + 元の拡張子）で保存する。
func (s *Server) handleUploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageフィールドが必要です"})
			return
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "画像サイズが上限を超えています"})
			return
		}

		filename := uuid.New().String() + filepath.Ext(header.Filename)
		dst, err := os.Create(filepath.Join(s.uploadDir, filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の保存に失敗しました"})
			log.Printf("画像保存エラー: %v", err)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の保存に失敗しました"})
			log.Printf("画像書き込みエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"filename": filename})
	}
}

// handleDownloadImage は画像ダウンロードを処理するハンドラを返す。
// クエリパラメータfilenameで保存済みファイル名を指定する。
// パス区切りを含むファイル名は保存ディレクトリ外への参照になるため拒否する。
func (s *Server) handleDownloadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Query("filename")
		if filename == "" || filename != filepath.Base(filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ファイル名が不正です"})
			return
		}

		path := filepath.Join(s.uploadDir, filename)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("画像が見つかりません: %s", filename)})
			return
		}

		c.File(path)
	}
}
