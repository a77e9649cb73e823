package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	Logger = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestWriteErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{"驗證錯誤", NewValidationError("batch size 25 exceeds limit 20"), http.StatusBadRequest, "exceeds limit"},
		{"自定義錯誤", ErrExtractionFailed, http.StatusBadGateway, "EXTRACTION_FAILED"},
		{"未知錯誤", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteErrorResponse(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}
