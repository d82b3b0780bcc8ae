package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"zarfuel_backend/internals/configs"
	"zarfuel_backend/internals/features/users/auth/model"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

const accessTTLDefault = 24 * time.Hour

// AccessTTL reads TOKEN_TTL_HOURS, defaulting to 24h.
func AccessTTL() time.Duration {
	if raw := configs.GetEnv("TOKEN_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return accessTTLDefault
}

// CreateAccessToken signs a token whose claims carry everything the request
// path needs: identity, role for gating, and the display name used when the
// holder's actions fan out notifications.
func CreateAccessToken(p profileModel.ProfileModel) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT secret is not configured")
	}
	expiresAt := time.Now().Add(AccessTTL())
	claims := jwt.MapClaims{
		"user_id":   p.ProfileID.String(),
		"role":      p.ProfileRole,
		"full_name": p.FullName(),
		"email":     p.ProfileEmail,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// BlacklistToken revokes a token until expiredAt. Re-revoking the same token
// is a no-op.
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	entry := model.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}
	err := db.Create(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// IsBlacklisted is wired into the JWT middleware as its BlacklistChecker.
func IsBlacklisted(db *gorm.DB) func(raw string) (bool, error) {
	return func(raw string) (bool, error) {
		var count int64
		err := db.Model(&model.TokenBlacklist{}).
			Where("token_blacklist_token = ?", raw).
			Count(&count).Error
		return count > 0, err
	}
}

// TokenExpiry pulls exp out of an already-verified token so logout knows how
// long the blacklist row must live. Falls back to the default TTL when the
// claim is missing.
func TokenExpiry(raw string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok && exp > 0 {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(AccessTTL())
}
