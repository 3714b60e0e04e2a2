package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"board-api/internal/i18n"
	"board-api/internal/middleware"
	"board-api/internal/response"
	"board-api/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorEnvelope struct {
	StatusCode int                     `json:"statusCode"`
	ErrorCode  string                  `json:"errorCode"`
	Message    string                  `json:"message"`
	Data       []validation.FieldError `json:"data"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	translator, err := validation.Setup()
	if err != nil {
		t.Fatalf("validation setup: %v", err)
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.LanguageMiddleware(i18n.NewNegotiator(i18n.KO)))
	engine.Use(middleware.ErrorHandler(zap.NewNop(), translator, true))

	service := NewService(NewRepository(newTestDB(t)), zap.NewNop())
	RegisterRoutes(engine, NewHandler(service, 50))
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func createViaAPI(t *testing.T, engine *gin.Engine, title string) BoardResponse {
	t.Helper()
	w := doRequest(engine, http.MethodPost, "/boards", `{"title":"`+title+`","content":"body","author":"kim"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", w.Code, w.Body.String())
	}
	return decode[response.ObjectResponse[BoardResponse]](t, w).Row
}

func TestHandler_CreateAndView(t *testing.T) {
	engine := newTestEngine(t)
	created := createViaAPI(t, engine, "first post")
	if created.ViewCount != 0 || !created.IsActive || created.Content != "body" {
		t.Fatalf("created=%+v", created)
	}

	for want := int64(1); want <= 2; want++ {
		w := doRequest(engine, http.MethodGet, "/boards/"+created.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("get status=%d", w.Code)
		}
		got := decode[response.ObjectResponse[BoardResponse]](t, w).Row
		if got.ViewCount != want {
			t.Fatalf("viewCount=%d want=%d", got.ViewCount, want)
		}
	}
}

func TestHandler_CreateValidation(t *testing.T) {
	engine := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/boards", `{"content":"body","author":"kim"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	body := decode[errorEnvelope](t, w)
	if body.ErrorCode != "VALIDATION_FAILED" {
		t.Fatalf("errorCode=%s", body.ErrorCode)
	}
	if len(body.Data) != 1 || body.Data[0].Field != "title" || !strings.Contains(body.Data[0].Message, "필수") {
		t.Fatalf("data=%+v", body.Data)
	}

	w = doRequest(engine, http.MethodPost, "/boards", `{"content":"body","author":"kim"}`, "Accept-Language", "en")
	body = decode[errorEnvelope](t, w)
	if len(body.Data) != 1 || !strings.Contains(body.Data[0].Message, "required") {
		t.Fatalf("data=%+v", body.Data)
	}

	long := strings.Repeat("a", 101)
	w = doRequest(engine, http.MethodPost, "/boards", `{"title":"`+long+`","content":"body","author":"kim"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("long title status=%d", w.Code)
	}

	w = doRequest(engine, http.MethodPost, "/boards", `{"title":"t","content":"c","author":"a","viewCount":99}`)
	if w.Code != http.StatusBadRequest || decode[errorEnvelope](t, w).ErrorCode != "INVALID_REQUEST_BODY" {
		t.Fatalf("unknown field status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestHandler_CreateConflict(t *testing.T) {
	engine := newTestEngine(t)
	createViaAPI(t, engine, "dup")

	w := doRequest(engine, http.MethodPost, "/boards", `{"title":"dup","content":"c","author":"a"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d", w.Code)
	}
	body := decode[errorEnvelope](t, w)
	if body.ErrorCode != "CONFLICT_BOARD_TITLE" || body.Message != "중복된 게시물입니다." {
		t.Fatalf("body=%+v", body)
	}
}

func TestHandler_GetErrors(t *testing.T) {
	engine := newTestEngine(t)

	w := doRequest(engine, http.MethodGet, "/boards/not-a-uuid", "")
	if w.Code != http.StatusBadRequest || decode[errorEnvelope](t, w).ErrorCode != "INVALID_BOARD_ID" {
		t.Fatalf("bad id status=%d body=%s", w.Code, w.Body.String())
	}

	w = doRequest(engine, http.MethodGet, "/boards/6f1c2d3e-0000-4000-8000-000000000000", "", "Accept-Language", "en")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status=%d", w.Code)
	}
	body := decode[errorEnvelope](t, w)
	if body.ErrorCode != "NOT_FOUND_BOARD" || body.Message != "Board not found" {
		t.Fatalf("body=%+v", body)
	}
}

func TestHandler_List(t *testing.T) {
	engine := newTestEngine(t)

	w := doRequest(engine, http.MethodGet, "/boards", "")
	if w.Code != http.StatusOK {
		t.Fatalf("empty list status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"rows":[]`) || !strings.Contains(w.Body.String(), `"count":0`) {
		t.Fatalf("empty list body=%s", w.Body.String())
	}

	for _, title := range []string{"Apple pie", "apple juice", "banana"} {
		createViaAPI(t, engine, title)
	}

	w = doRequest(engine, http.MethodGet, "/boards?title=APPLE&pageSize=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := w.Header().Get(TotalPagesHeader); got != "2" {
		t.Fatalf("%s=%q want=2", TotalPagesHeader, got)
	}
	if strings.Contains(w.Body.String(), `"content"`) {
		t.Fatalf("list rows must not carry content: %s", w.Body.String())
	}
	list := decode[response.ListResponse[BoardListItem]](t, w)
	if list.Count != 2 || len(list.Rows) != 1 {
		t.Fatalf("list=%+v", list)
	}
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	engine := newTestEngine(t)
	created := createViaAPI(t, engine, "editable")

	w := doRequest(engine, http.MethodPut, "/boards/"+created.ID, `{"content":"changed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", w.Code, w.Body.String())
	}
	updated := decode[response.ObjectResponse[BoardResponse]](t, w).Row
	if updated.Content != "changed" || updated.Title != "editable" {
		t.Fatalf("updated=%+v", updated)
	}

	w = doRequest(engine, http.MethodPut, "/boards/"+created.ID, `{"title":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty title status=%d", w.Code)
	}

	w = doRequest(engine, http.MethodDelete, "/boards/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", w.Code)
	}
	w = doRequest(engine, http.MethodGet, "/boards/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status=%d", w.Code)
	}
	w = doRequest(engine, http.MethodDelete, "/boards/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status=%d", w.Code)
	}

	w = doRequest(engine, http.MethodDelete, "/boards/"+created.ID+"/permanent", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("purge status=%d", w.Code)
	}
	w = doRequest(engine, http.MethodDelete, "/boards/"+created.ID+"/permanent", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second purge status=%d", w.Code)
	}
}
