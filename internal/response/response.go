// Package response holds the JSON envelopes every endpoint answers with.
package response

type ObjectResponse[T any] struct {
	Row          T      `json:"row"`
	ResponseCode string `json:"responseCode,omitempty"`
	Extras       any    `json:"extras,omitempty"`
}

func Object[T any](row T) ObjectResponse[T] {
	return ObjectResponse[T]{Row: row}
}

type ListResponse[T any] struct {
	Rows  []T   `json:"rows"`
	Count int64 `json:"count"`
}

// List never renders rows as null.
func List[T any](rows []T, count int64) ListResponse[T] {
	if rows == nil {
		rows = []T{}
	}
	return ListResponse[T]{Rows: rows, Count: count}
}

// ErrorBody is rendered for client errors (status < 500).
type ErrorBody struct {
	StatusCode int    `json:"statusCode" example:"404"`
	ErrorCode  string `json:"errorCode,omitempty" example:"NOT_FOUND_BOARD"`
	Message    string `json:"message" example:"게시물을 찾을 수 없습니다"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty" example:"Not Found"`
}

// ServerErrorBody is rendered for server errors (status >= 500).
type ServerErrorBody struct {
	StatusCode int    `json:"statusCode" example:"500"`
	Message    string `json:"message" example:"서버 내부 오류가 발생했습니다"`
	Stack      string `json:"stack,omitempty"`
}
