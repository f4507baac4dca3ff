package kids

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// uploadTestImage はマルチパートフォームで画像をアップロードするヘルパー。
func uploadTestImage(t *testing.T, s *Server, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("フォームファイルの作成に失敗: %v", err)
	}
	if _, err := io.Copy(part, strings.NewReader(content)); err != nil {
		t.Fatalf("フォームファイルの書き込みに失敗: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("マルチパートライターのクローズに失敗: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	t.Run("アップロードに成功しランダムなファイル名が返る", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := uploadTestImage(t, s, "photo.png", "fake-image-bytes")
		if w.Code != http.StatusOK {
			t.Fatalf("アップロードに失敗: status=%d, body=%s", w.Code, w.Body.String())
		}

		var resp struct {
			Filename string `json:"filename"`
		}
		decodeBody(t, w, &resp)
		if resp.Filename == "" {
			t.Fatal("ファイル名が空")
		}
		if !strings.HasSuffix(resp.Filename, ".png") {
			t.Errorf("元の拡張子が保持されていない: got=%s", resp.Filename)
		}
		if resp.Filename == "photo.png" {
			t.Error("元のファイル名がそのまま使われている")
		}
	})

	t.Run("同じ元ファイル名でも保存名は衝突しない", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		first := uploadTestImage(t, s, "photo.png", "first")
		second := uploadTestImage(t, s, "photo.png", "second")

		var a, b struct {
			Filename string `json:"filename"`
		}
		decodeBody(t, first, &a)
		decodeBody(t, second, &b)
		if a.Filename == b.Filename {
			t.Errorf("保存名が衝突した: %s", a.Filename)
		}
	})

	t.Run("imageフィールドがないと400を返す", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/images", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")

		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコードが不正: got=%d, want=%d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestDownloadImage(t *testing.T) {
	t.Parallel()

	t.Run("アップロードした画像をダウンロードできる", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		uploaded := uploadTestImage(t, s, "photo.png", "fake-image-bytes")
		var resp struct {
			Filename string `json:"filename"`
		}
		decodeBody(t, uploaded, &resp)

		w := doRequest(t, s, http.MethodGet, "/images?filename="+resp.Filename, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ダウンロードに失敗: status=%d", w.Code)
		}
		if w.Body.String() != "fake-image-bytes" {
			t.Errorf("ボディが不正: got=%s", w.Body.String())
		}
	})

	t.Run("未知のファイル名は404を返す", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := doRequest(t, s, http.MethodGet, "/images?filename=missing.png", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコードが不正: got=%d, want=%d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("ファイル名未指定は400を返す", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := doRequest(t, s, http.MethodGet, "/images", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコードが不正: got=%d, want=%d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("パス区切りを含むファイル名は400を返す", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := doRequest(t, s, http.MethodGet, "/images?filename=..%2Fsecret.txt", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコードが不正: got=%d, want=%d", w.Code, http.StatusBadRequest)
		}
	})
}
