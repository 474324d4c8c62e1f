package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func newProtectedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{Protect(testSecret)}
	if role != "" {
		handlers = append(handlers, RequireRole(role))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/protected", handlers...)
	return router
}

func TestProtectRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestProtectRejectsBadSignature(t *testing.T) {
	router := newProtectedRouter("")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.NewString()})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestProtectSetsContextValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	supplierID := uuid.New()

	router := gin.New()
	router.GET("/protected", Protect(testSecret), func(c *gin.Context) {
		gotUser, err := UserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)

		gotSupplier, err := SupplierID(c)
		require.NoError(t, err)
		assert.Equal(t, supplierID, gotSupplier)

		assert.Equal(t, "supplier", c.GetString(RoleContextKey))
		c.Status(http.StatusOK)
	})

	signed := signToken(t, jwt.MapClaims{
		"sub":        userID.String(),
		"role":       "supplier",
		"supplierId": supplierID.String(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	router := newProtectedRouter("supplier")

	signed := signToken(t, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "buyer",
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestSupplierIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := SupplierID(c)
	assert.Error(t, err)
}
