package portfolio

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/photofolio/pkg/middleware"
)

// handleIssueToken はJWTトークンの発行を処理するハンドラを返す。
// リクエストボディのクレームをそのまま署名する。所有者チェックの鍵となる
// emailクレームが空の場合のみ発行を拒否する。発行時点での本人確認は
// 外部の認証基盤の責務であり、ここでは行わない。
func (s *Server) handleIssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims map[string]any
		if err := c.ShouldBindJSON(&claims); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "emailクレームが必要です"})
			return
		}

		token, err := middleware.IssueToken(s.jwtSecret, claims)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークン生成に失敗しました"})
			log.Printf("JWT発行エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
