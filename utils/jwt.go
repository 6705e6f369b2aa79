package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fleetdesk/config"
	"fleetdesk/models"
)

// OfficeClaims is the bearer token payload: subject carries the office ID,
// the extra fields let guarded handlers echo the identity without a lookup.
type OfficeClaims struct {
	OfficeEmail  string `json:"officeEmail"`
	OfficeBranch string `json:"officeBranch"`
	jwt.RegisteredClaims
}

// OfficeID parses the subject back into the office key.
func (c *OfficeClaims) OfficeID() (int, error) {
	return strconv.Atoi(c.Subject)
}

func GenerateOfficeToken(office *models.Office) (string, error) {
	claims := &OfficeClaims{
		OfficeEmail:  office.Email,
		OfficeBranch: office.Branch,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(office.OfficeID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.AppConfig.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ParseOfficeToken(tokenString string) (*OfficeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OfficeClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*OfficeClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
