package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid-token")

// roomSessionClaims binds a player identity to a room for the lifetime of a
// session. Fields must be exported for JSON serialization.
type roomSessionClaims struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey []byte
	tokenAge  time.Duration
}

func NewJWTManager(secretKey string, tokenAge time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secretKey),
		tokenAge:  tokenAge,
	}
}

func (m *JWTManager) Generate(roomCode, playerName string) string {
	claims := roomSessionClaims{
		RoomCode:   roomCode,
		PlayerName: playerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, _ := token.SignedString(m.secretKey)

	return signedToken
}

// Verify returns the room code and player name carried by a valid token.
func (m *JWTManager) Verify(tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &roomSessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		return "", "", ErrInvalidToken
	}

	if claims, ok := token.Claims.(*roomSessionClaims); ok && token.Valid {
		return claims.RoomCode, claims.PlayerName, nil
	}

	return "", "", ErrInvalidToken
}
