package utils

import (
	"errors"
	"fmt"
	"time"

	"cloudreel/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims 会话令牌 Claims，用户标识放在标准 Subject 字段
// 令牌由托管身份提供方签发，本服务只持有共享密钥做校验
type Claims struct {
	jwt.RegisteredClaims
}

// UserID 返回令牌所属的用户标识
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken 使用共享密钥签发会话令牌
// 生产环境由身份提供方签发，此函数用于本地开发和测试
func GenerateToken(userID string) (string, error) {
	sessionCfg := config.GetSession()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionCfg.ExpireDuration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.GetApp().Name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(sessionCfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken 解析并验证会话令牌，返回 Claims
func ParseToken(tokenString string) (*Claims, error) {
	sessionCfg := config.GetSession()

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(sessionCfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
