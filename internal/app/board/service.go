package board

import (
	"context"

	"board-api/internal/pagination"

	"go.uber.org/zap"
)

type Service interface {
	GenerateBoard(ctx context.Context, input CreateBoardInput) (*Board, error)
	GetBoardListAndCount(ctx context.Context, filter Filter, page *pagination.Pagination) (*ListResult, error)
	GetBoard(ctx context.Context, id string) (*Board, error)
	FindOne(ctx context.Context, filter Filter) (*Board, error)
	ViewBoard(ctx context.Context, id string) (*Board, error)
	ModifyBoard(ctx context.Context, id string, input UpdateBoardInput) (*Board, error)
	RemoveBoard(ctx context.Context, id string) error
	PurgeBoard(ctx context.Context, id string) (*Board, error)
}

type ListResult struct {
	Rows       []*Board
	Count      int64
	Page       int
	PageSize   int
	TotalPages int64
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Sugar(),
	}
}

func (s *service) GenerateBoard(ctx context.Context, input CreateBoardInput) (*Board, error) {
	board, err := s.repo.CreateBoard(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Board created", "board_id", board.ID, "author", board.Author)
	return board, nil
}

// GetBoardListAndCount applies the default page (1) and page size (10) when
// page is nil or non-positive. An empty result is not an error.
func (s *service) GetBoardListAndCount(ctx context.Context, filter Filter, page *pagination.Pagination) (*ListResult, error) {
	p := pagination.New(0, 0)
	if page != nil {
		p = pagination.New(page.Page, page.PageSize)
	}

	rows, count, err := s.repo.FindBoardListAndCount(ctx, filter, &p)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Rows:       rows,
		Count:      count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(count),
	}, nil
}

func (s *service) GetBoard(ctx context.Context, id string) (*Board, error) {
	return s.repo.FindBoardByID(ctx, id)
}

// FindOne looks a board up by id when one is given, otherwise by the
// title/author filter.
func (s *service) FindOne(ctx context.Context, filter Filter) (*Board, error) {
	if filter.ID != "" {
		return s.repo.FindBoardByID(ctx, filter.ID)
	}
	return s.repo.FindBoard(ctx, Filter{Title: filter.Title, Author: filter.Author})
}

// ViewBoard is the detail read: it confirms the board is live, counts the
// view, then returns the post-increment state.
func (s *service) ViewBoard(ctx context.Context, id string) (*Board, error) {
	if _, err := s.repo.FindBoardByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.FindBoardByID(ctx, id)
}

func (s *service) ModifyBoard(ctx context.Context, id string, input UpdateBoardInput) (*Board, error) {
	return s.repo.UpdateBoard(ctx, id, input)
}

func (s *service) RemoveBoard(ctx context.Context, id string) error {
	if err := s.repo.DeleteBoard(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Board soft-deleted", "board_id", id)
	return nil
}

func (s *service) PurgeBoard(ctx context.Context, id string) (*Board, error) {
	board, err := s.repo.HardDeleteBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Board permanently deleted", "board_id", board.ID)
	return board, nil
}
