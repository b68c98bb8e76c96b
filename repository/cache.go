package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/pkg/profile"
	goredis "github.com/redis/go-redis/v9"
)

type Cache interface {
	CreateAccessToken(ctx context.Context, accessToken profile.AccessToken) error
	CreateRefreshToken(ctx context.Context, refreshToken profile.RefreshToken) error
	ExistsToken(ctx context.Context, userID, sessionID string, role profile.Role, tokenType profile.TokenType) (bool, error)
	DeleteToken(ctx context.Context, userID, sessionID string, role profile.Role, tokenType profile.TokenType) error
}

type cache struct {
	db                     *goredis.Client
	accessTokenExpireTime  time.Duration
	refreshTokenExpireTime time.Duration
}

func NewCacheRepository(client *goredis.Client, accessTokenExpireTime, refreshTokenExpireTime time.Duration) Cache {
	return &cache{
		db:                     client,
		accessTokenExpireTime:  accessTokenExpireTime,
		refreshTokenExpireTime: refreshTokenExpireTime,
	}
}

func tokenKey(userID, sessionID string, role profile.Role, tokenType profile.TokenType) string {
	prefix := profile.AccessTokenPrefix
	if tokenType == profile.Refresh {
		prefix = profile.RefreshTokenPrefix
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", profile.ApplicationPrefix, prefix, role, userID, sessionID)
}

func (tr *cache) CreateAccessToken(ctx context.Context, accessToken profile.AccessToken) error {
	key := tokenKey(accessToken.UserID, accessToken.SessionID, accessToken.Role, profile.Access)
	value := fmt.Sprintf("%d:%d", accessToken.IssuedAt, accessToken.ExpiresAt)
	err := tr.db.Set(ctx, key, value, tr.accessTokenExpireTime).Err()
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (tr *cache) CreateRefreshToken(ctx context.Context, refreshToken profile.RefreshToken) error {
	key := tokenKey(refreshToken.UserID, refreshToken.SessionID, refreshToken.Role, profile.Refresh)
	value := fmt.Sprintf("%d:%d", refreshToken.IssuedAt, refreshToken.ExpiresAt)
	err := tr.db.Set(ctx, key, value, tr.refreshTokenExpireTime).Err()
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (tr *cache) ExistsToken(ctx context.Context, userID, sessionID string, role profile.Role, tokenType profile.TokenType) (bool, error) {
	result, err := tr.db.Exists(ctx, tokenKey(userID, sessionID, role, tokenType)).Result()
	if err != nil {
		logger.Context(ctx).Error(err)
		return false, err
	}
	return result > 0, nil
}

func (tr *cache) DeleteToken(ctx context.Context, userID, sessionID string, role profile.Role, tokenType profile.TokenType) error {
	_, err := tr.db.Del(ctx, tokenKey(userID, sessionID, role, tokenType)).Result()
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}
