package board

import "board-api/internal/apperror"

const UniqueTitleIndex = "board_unique_title"

var (
	MsgFailToCreateBoard = apperror.Message{
		Code: "FAIL_TO_CREATE_BOARD",
		Text: map[string]string{"en": "Failed to create board", "ko": "게시물 생성에 실패했습니다"},
	}
	MsgFailToUpdateBoard = apperror.Message{
		Code: "FAIL_TO_UPDATE_BOARD",
		Text: map[string]string{"en": "Failed to update board", "ko": "게시물 수정에 실패했습니다"},
	}
	MsgFailToDeleteBoard = apperror.Message{
		Code: "FAIL_TO_DELETE_BOARD",
		Text: map[string]string{"en": "Failed to delete board", "ko": "게시물 삭제에 실패했습니다"},
	}
	MsgNotFoundBoard = apperror.Message{
		Code: "NOT_FOUND_BOARD",
		Text: map[string]string{"en": "Board not found", "ko": "게시물을 찾을 수 없습니다"},
	}
	MsgInvalidBoardID = apperror.Message{
		Code: "INVALID_BOARD_ID",
		Text: map[string]string{"en": "Invalid board id format", "ko": "올바르지 않은 ID 형식입니다"},
	}
	MsgConflictBoardTitle = apperror.Message{
		Code: "CONFLICT_BOARD_TITLE",
		Text: map[string]string{"en": "A board with the same title already exists", "ko": "중복된 게시물입니다."},
	}
)

func errNotFound() error {
	return apperror.New(apperror.KindNotFound, MsgNotFoundBoard)
}
