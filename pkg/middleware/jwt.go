package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL は発行するトークンの有効期間。
const tokenTTL = 24 * time.Hour

// contextKeyClaims はGinコンテキストに検証済みクレームを格納するためのキー。
const contextKeyClaims = "claims"

// IssueToken はクレームのマップからJWTトークンを生成する。
// クライアントが自己申告したクレームに有効期限（24時間）と発行時刻を
// 付与してHS256で署名する。所有者チェックに使うemailクレームを
// 含めるかどうかは呼び出し元の責任で検証すること。
func IssueToken(secret string, claims map[string]any) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	now := time.Now()
	mapClaims["exp"] = jwt.NewNumericDate(now.Add(tokenTTL))
	mapClaims["iat"] = jwt.NewNumericDate(now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はJWTトークンを検証するGinミドルウェアを返す。
// Authorizationヘッダーが無い場合は401、ヘッダーはあるが
// トークンが不正・期限切れの場合は403を返して中断する。
// 検証に成功した場合、コンテキストにクレームを設定する。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorizationヘッダーが必要です",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims はGinコンテキストから検証済みクレームを取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。
func GetClaims(c *gin.Context) jwt.MapClaims {
	v, _ := c.Get(contextKeyClaims)
	if claims, ok := v.(jwt.MapClaims); ok {
		return claims
	}
	return nil
}

// GetEmail は検証済みクレームからemailクレームを取得する。
// クレームが存在しない、またはemailが文字列でない場合は空文字列を返す。
func GetEmail(c *gin.Context) string {
	claims := GetClaims(c)
	if claims == nil {
		return ""
	}
	if email, ok := claims["email"].(string); ok {
		return email
	}
	return ""
}
