package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

func TestPasswordService(t *testing.T) {
	service := NewPasswordService(bcrypt.MinCost)

	hash, err := service.HashPassword("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.NoError(t, service.VerifyPassword(hash, "segredo123"))
	assert.Error(t, service.VerifyPassword(hash, "errada"))

	assert.NoError(t, service.ValidatePasswordStrength("123456"))
	assert.Error(t, service.ValidatePasswordStrength("12345"))
}

func TestPasswordServiceCostFallback(t *testing.T) {
	service := NewPasswordService(0).(*passwordService)
	assert.Equal(t, DefaultBcryptCost, service.cost)

	service = NewPasswordService(bcrypt.MaxCost + 1).(*passwordService)
	assert.Equal(t, DefaultBcryptCost, service.cost)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	service := NewTokenService("secret", time.Hour)
	user := entity.NewUser("ana@example.com", "Ana", "hash")

	issued, err := service.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, time.Minute)

	claims, err := service.ValidateToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestTokenServiceRejects(t *testing.T) {
	service := NewTokenService("secret", time.Hour).(*tokenService)
	user := entity.NewUser("ana@example.com", "Ana", "hash")

	issued, err := service.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		_, err := other.ValidateToken(context.Background(), issued.Token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenService("secret", time.Hour).(*tokenService)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ValidateToken(context.Background(), issued.Token)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": uuid.NewString(),
			"iss":     "someone-else",
			"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(context.Background(), signed)
		assert.Error(t, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": uuid.NewString(),
			"iss":     TokenIssuer,
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(context.Background(), signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken(context.Background(), "not-a-token")
		assert.Error(t, err)
	})
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSystemClock().Now().Location())
}
