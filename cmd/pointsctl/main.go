// pointsctl はゲームマスター向けのポイント付与CLI。
// ポイント加算APIは信頼された内部呼び出し元専用のため、
// このツールはAPIサーバーに直接到達できるネットワークから実行する。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kidshub/kidshub/pkg/httpclient"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "kidshub APIサーバーのベースURL")
	account := flag.String("account", "", "ポイントを付与する子どものaccount_id")
	amount := flag.Int64("amount", 0, "加算するポイント数（負数で減算）")
	flag.Parse()

	if *account == "" {
		fmt.Fprintln(os.Stderr, "usage: pointsctl -account <account_id> [-amount <points>] [-addr <url>]")
		os.Exit(2)
	}

	client := httpclient.New(*addr)

	var result struct {
		Points     int64  `json:"points"`
		Mentorship string `json:"mentorship"`
	}
	err := client.PostJSON(context.Background(), "/kids/points/add", map[string]any{
		"account_id": *account,
		"amount":     *amount,
	}, &result)
	if err != nil {
		log.Fatalf("ポイント加算に失敗しました: %v", err)
	}

	fmt.Printf("account=%s points=%d mentorship=%s\n", *account, result.Points, result.Mentorship)
}
