package model

import (
	"time"
)

// TokenBlacklist holds tokens revoked by logout until they would have
// expired anyway; the cleanup scheduler reaps them afterwards.
type TokenBlacklist struct {
	TokenBlacklistID        uint      `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;type:text;not null;unique" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;index" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
