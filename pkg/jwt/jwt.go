package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de YCMS.
// Se incluyen user_type, role y supplier_id para que los middlewares puedan
// loguear contexto sin consultar la DB; la autorización real siempre se
// evalúa contra un snapshot fresco del usuario (ver application/auth).
type Claims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"user_id"`
	UserType   string `json:"user_type"` // "aladdin" | "supplier"
	Role       string `json:"role"`      // super_admin | aladdin_admin | aladdin_staff | supplier_admin | supplier_staff
	SupplierID *int64 `json:"supplier_id,omitempty"`
}

// Generate genera un token JWT firmado con los claims de YCMS.
func Generate(secret string, userID int64, userType, role string, supplierID *int64, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     userID,
		UserType:   userType,
		Role:       role,
		SupplierID: supplierID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de YCMS.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
