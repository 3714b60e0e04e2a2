package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"board-api/internal/apperror"
	"board-api/internal/i18n"
	"board-api/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var msgMissing = apperror.Message{
	Code: "MISSING_THING",
	Text: map[string]string{"en": "Thing not found", "ko": "찾을 수 없습니다"},
}

func newTestEngine(exposeStack bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(LanguageMiddleware(i18n.NewNegotiator(i18n.KO)))
	engine.Use(ErrorHandler(zap.NewNop(), nil, exposeStack))
	engine.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperror.New(apperror.KindNotFound, msgMissing))
	})
	engine.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("database exploded"))
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func TestErrorHandler_ClientErrorIsLocalized(t *testing.T) {
	engine := newTestEngine(true)

	for _, tt := range []struct {
		lang string
		want string
	}{
		{lang: "", want: "찾을 수 없습니다"},
		{lang: "en", want: "Thing not found"},
		{lang: "zh", want: "찾을 수 없습니다"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		if tt.lang != "" {
			req.Header.Set("Accept-Language", tt.lang)
		}
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d want=404", w.Code)
		}
		var body response.ErrorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Message != tt.want {
			t.Errorf("lang=%q message=%q want=%q", tt.lang, body.Message, tt.want)
		}
		if body.StatusCode != http.StatusNotFound || body.ErrorCode != "MISSING_THING" || body.Error != "Not Found" {
			t.Errorf("body=%+v", body)
		}
	}
}

func TestErrorHandler_ServerErrorCarriesStack(t *testing.T) {
	engine := newTestEngine(true)

	for _, path := range []string{"/boom", "/panic"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: status=%d want=500", path, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["stack"] == nil || body["stack"] == "" {
			t.Errorf("%s: stack missing in %v", path, body)
		}
		if _, ok := body["errorCode"]; ok {
			t.Errorf("%s: server errors must not carry errorCode: %v", path, body)
		}
	}
}

func TestErrorHandler_HidesStackWhenDisabled(t *testing.T) {
	engine := newTestEngine(false)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["stack"]; ok {
		t.Fatalf("stack must be omitted: %v", body)
	}
}

func TestErrorHandler_LeavesSuccessAlone(t *testing.T) {
	engine := newTestEngine(true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Accept-Language", "en-US")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := w.Header().Get("Content-Language"); got != i18n.EN {
		t.Fatalf("Content-Language=%q want=en", got)
	}
}
