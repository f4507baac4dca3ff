package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims はJWTトークンのクレーム（ペイロード）を表す。
// 認証済みの子どものレコードIDをリクエスト間で引き回すために使用する。
type JWTClaims struct {
	jwt.RegisteredClaims
	// KidID は認証済みの子どものレコードID。
	KidID int64 `json:"kid_id"`
}

// tokenTTL はトークンの有効期間。スマホアプリからの利用を想定して長めにしている。
const tokenTTL = 7 * 24 * time.Hour

// GenerateJWT は子どものレコードIDからJWTトークンを生成する。
// ログイン成功時にkidshub APIが呼び出す。
func GenerateJWT(secret string, kidID int64) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(kidID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "kidshub-api",
		},
		KidID: kidID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はJWTトークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに "kid_id" を設定する。
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
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set("kid_id", claims.KidID)
		c.Next()
	}
}

// GetKidID はGinコンテキストから子どものレコードIDを取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。未設定の場合は0を返す。
func GetKidID(c *gin.Context) int64 {
	kidID, _ := c.Get("kid_id")
	if id, ok := kidID.(int64); ok {
		return id
	}
	return 0
}
