package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("User-Agent", "unit-test")
	c.Set(ClaimsKey, &types.Claims{UserID: 9, Username: "ops"})

	actor := ActorFromContext(c)
	assert.Equal(t, uint(9), actor.UserID)
	assert.Equal(t, "unit-test", actor.UserAgent)

	name, err := GetUserNameFromContext(c)
	assert.NoError(t, err)
	assert.Equal(t, "ops", name)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrNoClaims)
}
