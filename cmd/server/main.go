// 写真ポートフォリオAPIサーバーのエントリポイント。
// 掲載サービスとレビューのCRUD、およびJWTによる認可を提供する。
// MongoDBクライアントの接続と切断はこのエントリポイントが所有する。
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/nao1215/photofolio/internal/portfolio"
	"github.com/nao1215/photofolio/internal/store"
)

// connectTimeout はMongoDBへの接続と疎通確認のタイムアウト。
const connectTimeout = 10 * time.Second

func main() {
	port := getEnvOr("PORT", "5000")
	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")
	mongoURI := getEnvOr("MONGO_URI", "mongodb://localhost:27017")
	mongoDB := getEnvOr("MONGO_DB", "photography")
	frontendURL := getEnvOr("FRONTEND_URL", "*")

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := store.Connect(ctx, mongoURI)
	if err != nil {
		log.Fatalf("MongoDBへの接続に失敗: %v", err)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			log.Printf("MongoDBとの切断に失敗: %v", err)
		}
	}()

	server := portfolio.NewServer(portfolio.Config{
		Port:           port,
		JWTSecret:      jwtSecret,
		AllowedOrigins: []string{frontendURL},
		Services:       client.Collection(mongoDB, "services"),
		Reviews:        client.Collection(mongoDB, "reviews"),
	})

	log.Printf("ポートフォリオAPIサーバーを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("ポートフォリオAPIサーバーの起動に失敗: %v", err)
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
