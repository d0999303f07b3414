package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestRoleClaim(t *testing.T) {
	assert.Equal(t, "admin", roleClaim(jwt.MapClaims{"role": "admin"}))
	assert.Equal(t, "staff", roleClaim(jwt.MapClaims{"role": "staff", "user_id": "x"}))
	assert.Equal(t, "", roleClaim(jwt.MapClaims{}))
	assert.Equal(t, "", roleClaim(jwt.MapClaims{"role": 42}))
	assert.Equal(t, "", roleClaim(nil))
}
