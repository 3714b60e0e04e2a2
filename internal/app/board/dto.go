package board

import "time"

type CreateBoardInput struct {
	Title   string `json:"title" binding:"required,max=100" example:"안녕하세요!"`
	Content string `json:"content" binding:"required" example:"오늘도 좋은 하루 보내세요!"`
	Author  string `json:"author" binding:"required" example:"홍길동"`
}

// UpdateBoardInput is a partial update: nil fields are left untouched.
type UpdateBoardInput struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=100" example:"수정된 제목입니다"`
	Content  *string `json:"content,omitempty" binding:"omitempty,min=1" example:"수정된 내용입니다"`
	Author   *string `json:"author,omitempty" binding:"omitempty,min=1" example:"홍길동"`
	IsActive *bool   `json:"isActive,omitempty" example:"true"`
}

func (in UpdateBoardInput) columns() map[string]any {
	updates := make(map[string]any, 5)
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Author != nil {
		updates["author"] = *in.Author
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

// Filter selects boards. ID is authoritative: when set, Title and Author are
// ignored. Title and Author match case-insensitive substrings.
type Filter struct {
	ID             string `form:"id"`
	Title          string `form:"title"`
	Author         string `form:"author"`
	IncludeDeleted bool   `form:"-"`
}

type BoardResponse struct {
	ID        string    `json:"id" example:"0b6f4a3e-7f0c-4a53-9d4e-1b2d6f3c9a10"`
	Title     string    `json:"title" example:"안녕하세요!"`
	Content   string    `json:"content" example:"오늘도 좋은 하루 보내세요!"`
	Author    string    `json:"author" example:"홍길동"`
	ViewCount int64     `json:"viewCount" example:"0"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardListItem is the list projection; content is left out of list pages.
type BoardListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ViewCount int64     `json:"viewCount"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewBoardResponse(b *Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    b.Author,
		ViewCount: b.ViewCount,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBoardListItem(b *Board) BoardListItem {
	return BoardListItem{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ViewCount: b.ViewCount,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBoardListItems(boards []*Board) []BoardListItem {
	items := make([]BoardListItem, 0, len(boards))
	for _, b := range boards {
		items = append(items, NewBoardListItem(b))
	}
	return items
}
