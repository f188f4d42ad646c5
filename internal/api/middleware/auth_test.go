package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudreel/internal/config"
	"cloudreel/pkg/logger"
	"cloudreel/pkg/utils"

	"github.com/gin-gonic/gin"
)

const testConfigYAML = `
app:
  name: "cloudreel-test"
  mode: "release"
session:
  secret: "unit-test-secret"
  expire_hours: 1
`

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "cloudreel-middleware-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		panic(err)
	}
	if _, err := config.Load(path); err != nil {
		panic(err)
	}
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_ValidToken(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateToken("user-7")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doAuthRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "user-7" {
		t.Errorf("context user = %s, want user-7", w.Body.String())
	}
}

func TestAuthRequired_CaseInsensitiveScheme(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateToken("user-7")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doAuthRequest(t, r, "bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("lowercase scheme rejected: status = %d", w.Code)
	}
}

func TestAuthRequired_Rejections(t *testing.T) {
	r := authTestRouter()

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "no token after scheme", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doAuthRequest(t, r, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"error":"Unauthorized"`) {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestGetCurrentUserID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := GetCurrentUserID(c); ok {
		t.Fatal("unset context must not yield a user ID")
	}
}
