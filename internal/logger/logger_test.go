package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "{a=1, b=x, c=0.50}", formatFields(Fields{"c": 0.5, "a": 1, "b": "x"}))
	assert.Equal(t, "{flag=true, n=7}", formatFields(Fields{"n": int64(7), "flag": true}))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("hello", Fields{"k": "v"})
	Warn("careful", nil)
	Debug("details", Fields{"n": 3})
	Error("broken", errors.New("boom"), Fields{"request_id": "r1"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] hello {k=v}")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[DEBUG] details {n=3}")
	assert.Contains(t, out, "[ERROR] broken: boom {request_id=r1}")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/scales/musicxml", nil)
	c.Set("request_id", "abc")
	c.Set("user_id_str", "42")

	fields := WithContext(c)
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/scales/musicxml", fields["path"])
	assert.Equal(t, "42", fields["user_id"])
}
