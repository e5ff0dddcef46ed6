package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_AddAndCheck(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := bl.AddToBlacklist(ctx, "jti-1", time.Minute)
	require.NoError(t, err)

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = bl.IsBlacklisted(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_ExpiredEntry(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := bl.AddToBlacklist(ctx, "jti-2", -time.Second)
	require.NoError(t, err)

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_UserInvalidation(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	issuedBefore := time.Now().Add(-time.Minute)

	err := bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour)
	require.NoError(t, err)

	invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalidated)

	issuedAfter := time.Now().Add(time.Minute)
	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", issuedAfter)
	require.NoError(t, err)
	assert.False(t, invalidated)

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-other", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated)
}
