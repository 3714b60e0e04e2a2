package apperror

var (
	MsgInternal = Message{
		Code: "INTERNAL_SERVER_ERROR",
		Text: map[string]string{
			"en": "Internal server error",
			"ko": "서버 내부 오류가 발생했습니다",
		},
	}
	MsgInvalidRequestBody = Message{
		Code: "INVALID_REQUEST_BODY",
		Text: map[string]string{
			"en": "Request body is malformed or contains unknown fields",
			"ko": "요청 본문 형식이 올바르지 않거나 허용되지 않은 필드가 포함되어 있습니다",
		},
	}
	MsgValidationFailed = Message{
		Code: "VALIDATION_FAILED",
		Text: map[string]string{
			"en": "Request validation failed",
			"ko": "요청 값 검증에 실패했습니다",
		},
	}
	MsgRouteNotFound = Message{
		Code: "ROUTE_NOT_FOUND",
		Text: map[string]string{
			"en": "Route not found",
			"ko": "요청한 경로를 찾을 수 없습니다",
		},
	}
)
