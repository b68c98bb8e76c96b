package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/service"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	jwtService := service.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	accessClaim, refreshClaim := jwtService.EncodeJWT(ctx, "user-1", profile.Doctor)
	require.Equal(t, accessClaim.SessionID, refreshClaim.SessionID)
	require.Equal(t, profile.Access, accessClaim.Type)
	require.Equal(t, profile.Refresh, refreshClaim.Type)

	accessToken, err := jwtService.SignedJWT(ctx, accessClaim)
	require.NoError(t, err)
	refreshToken, err := jwtService.SignedJWT(ctx, refreshClaim)
	require.NoError(t, err)

	decodedAccess, err := jwtService.DecodeAccessToken(ctx, accessToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", decodedAccess.UserID)
	require.Equal(t, profile.Doctor, decodedAccess.Role)
	require.Equal(t, accessClaim.SessionID, decodedAccess.SessionID)

	decodedRefresh, err := jwtService.DecodeRefreshToken(ctx, refreshToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", decodedRefresh.UserID)
}

func TestJWTTokenTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	jwtService := service.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	accessClaim, refreshClaim := jwtService.EncodeJWT(ctx, "user-1", profile.Patient)

	accessToken, err := jwtService.SignedJWT(ctx, accessClaim)
	require.NoError(t, err)
	refreshToken, err := jwtService.SignedJWT(ctx, refreshClaim)
	require.NoError(t, err)

	_, err = jwtService.DecodeAccessToken(ctx, refreshToken)
	require.Error(t, err)

	_, err = jwtService.DecodeRefreshToken(ctx, accessToken)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	signer := service.NewJWTService("secret-a", 15*time.Minute, 24*time.Hour)
	verifier := service.NewJWTService("secret-b", 15*time.Minute, 24*time.Hour)

	accessClaim, _ := signer.EncodeJWT(ctx, "user-1", profile.Patient)
	token, err := signer.SignedJWT(ctx, accessClaim)
	require.NoError(t, err)

	_, err = verifier.DecodeAccessToken(ctx, token)
	require.Error(t, err)
}

func TestJWTExpiredToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	jwtService := service.NewJWTService("test-secret", -time.Minute, 24*time.Hour)

	accessClaim, _ := jwtService.EncodeJWT(ctx, "user-1", profile.Patient)
	token, err := jwtService.SignedJWT(ctx, accessClaim)
	require.NoError(t, err)

	_, err = jwtService.DecodeAccessToken(ctx, token)
	require.Error(t, err)
}
