// kidshub はkidshub APIサーバーのエントリーポイント。
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kidshub/kidshub/internal/kids"
)

func main() {
	// .envファイルがあれば読み込む。なければ環境変数のみ使う。
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server, err := kids.NewServer(port)
	if err != nil {
		log.Fatalf("サーバーの初期化に失敗しました: %v", err)
	}

	log.Printf("kidshub APIサーバーを起動します (port=%s)", port)
	if err := server.Run(); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
