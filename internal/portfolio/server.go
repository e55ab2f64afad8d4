package portfolio

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/photofolio/internal/store"
	"github.com/nao1215/photofolio/pkg/middleware"
)

// recentWorksLimit はトップページ向けに返す直近サービスの最大件数。
const recentWorksLimit = 3

// Server は写真ポートフォリオAPIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// services は掲載サービスのコレクション。
	services store.Collection
	// reviews はレビューのコレクション。
	reviews store.Collection
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
}

// Config はサーバーの構成。ストアへのハンドルは呼び出し元が所有し、
// サーバーは借り受けるだけでクローズしない。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// JWTSecret はJWT署名用の秘密鍵。
	JWTSecret string
	// AllowedOrigins はCORSで許可するオリジン。"*"で全オリジンを許可する。
	AllowedOrigins []string
	// Services は掲載サービスのコレクション。
	Services store.Collection
	// Reviews はレビューのコレクション。
	Reviews store.Collection
}

// NewServer は新しいポートフォリオサーバーを生成する。
func NewServer(cfg Config) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		services:  cfg.Services,
		reviews:   cfg.Reviews,
		jwtSecret: cfg.JWTSecret,
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// 認可の要否はエンドポイントごとに異なるため、グループではなく
// ルート単位でJWTAuthミドルウェアを適用する。
func (s *Server) setupRoutes() {
	// トークン発行（認証不要。発行時点では本人確認を行わない）
	s.router.POST("/jwt", s.handleIssueToken())

	// 掲載サービス
	s.router.GET("/works", s.handleListRecentServices())
	s.router.GET("/services", s.handleListServices())
	s.router.GET("/services/:id", s.handleGetService())
	s.router.POST("/services", middleware.JWTAuth(s.jwtSecret), s.handleCreateService())

	// レビュー
	s.router.POST("/review", s.handleCreateReview())
	s.router.GET("/review", middleware.JWTAuth(s.jwtSecret), s.handleListReviewsByEmail())
	s.router.GET("/review/:id", s.handleListReviewsByService())
	s.router.GET("/update/:id", s.handleGetReview())
	s.router.PUT("/update/:id", s.handleReplaceReview())
	s.router.DELETE("/review/:id", middleware.JWTAuth(s.jwtSecret), s.handleDeleteReview())

	// 死活監視
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "travel photographer server running")
	})
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "portfolio"})
	})
}
