package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más los campos propios del portal.
// El token ES la sesión: no se guarda nada del lado del servidor, cada request
// reconstruye la identidad a partir de estos claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"` // "S" | "A" | "U"
	CompanyID int64  `json:"company_id"`
}

// Session son los claims de aplicación, sin los timestamps que añade la firma.
type Session struct {
	UserID    int64
	Name      string
	Role      string
	CompanyID int64
}

// Generate firma un token HS256 con la sesión indicada. El jti permite
// correlacionar logs de auditoría entre emisión y uso.
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    s.UserID,
		Name:      s.Name,
		Role:      s.Role,
		CompanyID: s.CompanyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve la sesión contenida en el token.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Session, error) {
	if secret == "" {
		return Session{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("claims inválidos")
	}
	return Session{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
	}, nil
}
