package board

import (
	"context"
	"strings"
	"time"

	"board-api/internal/apperror"
	"board-api/internal/db"
	"board-api/internal/pagination"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Repository interface {
	CreateBoard(ctx context.Context, input CreateBoardInput) (*Board, error)
	FindBoard(ctx context.Context, filter Filter) (*Board, error)
	FindBoardListAndCount(ctx context.Context, filter Filter, page *pagination.Pagination) ([]*Board, int64, error)
	FindBoardByID(ctx context.Context, id string) (*Board, error)
	UpdateBoard(ctx context.Context, id string, input UpdateBoardInput) (*Board, error)
	DeleteBoard(ctx context.Context, id string) error
	HardDeleteBoard(ctx context.Context, id string) (*Board, error)
	IncrementViewCount(ctx context.Context, id string) (*Board, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const newestFirst = "created_at DESC, id DESC"

func (r *repository) CreateBoard(ctx context.Context, input CreateBoardInput) (*Board, error) {
	board := &Board{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		IsActive: true,
	}
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperror.Wrap(apperror.KindConflict, MsgConflictBoardTitle, err)
		}
		return nil, apperror.Wrap(apperror.KindCreateFailed, MsgFailToCreateBoard, err)
	}
	return board, nil
}

func (r *repository) FindBoard(ctx context.Context, filter Filter) (*Board, error) {
	query, ok := r.filtered(ctx, filter)
	if !ok {
		return nil, errNotFound()
	}

	var board Board
	err := query.Order(newestFirst).Take(&board).Error
	if err != nil {
		if db.IsNotFound(err) || db.IsInvalidInput(err) {
			return nil, errNotFound()
		}
		return nil, apperror.Internal(err)
	}
	return &board, nil
}

// FindBoardListAndCount returns one page of matching boards, newest first,
// and the size of the whole filtered set. A nil page returns every match.
// Filter values the store rejects yield an empty result rather than an error.
func (r *repository) FindBoardListAndCount(ctx context.Context, filter Filter, page *pagination.Pagination) ([]*Board, int64, error) {
	if _, ok := r.filtered(ctx, filter); !ok {
		return []*Board{}, 0, nil
	}

	var (
		boards []*Board
		count  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, _ := r.filtered(gctx, filter)
		query = query.Order(newestFirst)
		if page != nil {
			query = query.Offset(page.Offset()).Limit(page.Limit())
		}
		return query.Find(&boards).Error
	})
	g.Go(func() error {
		query, _ := r.filtered(gctx, filter)
		return query.Count(&count).Error
	})

	if err := g.Wait(); err != nil {
		if db.IsInvalidInput(err) {
			return []*Board{}, 0, nil
		}
		return nil, 0, apperror.Internal(err)
	}

	if boards == nil {
		boards = []*Board{}
	}
	return boards, count, nil
}

func (r *repository) FindBoardByID(ctx context.Context, id string) (*Board, error) {
	return r.FindBoard(ctx, Filter{ID: id})
}

func (r *repository) UpdateBoard(ctx context.Context, id string, input UpdateBoardInput) (*Board, error) {
	id, ok := NormalizeID(id)
	if !ok {
		return nil, errNotFound()
	}

	updates := input.columns()
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&Board{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if db.IsDuplicateKey(res.Error) {
			return nil, apperror.Wrap(apperror.KindConflict, MsgConflictBoardTitle, res.Error)
		}
		return nil, apperror.Wrap(apperror.KindUpdateFailed, MsgFailToUpdateBoard, res.Error)
	}

	if res.RowsAffected == 0 {
		live, err := r.exists(ctx, id)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !live {
			return nil, errNotFound()
		}
		return nil, apperror.New(apperror.KindUpdateFailed, MsgFailToUpdateBoard)
	}

	return r.FindBoardByID(ctx, id)
}

// DeleteBoard soft-deletes a live board. Losing a race with a concurrent
// delete between the existence check and the write is reported as
// DeleteFailed.
func (r *repository) DeleteBoard(ctx context.Context, id string) error {
	id, ok := NormalizeID(id)
	if !ok {
		return errNotFound()
	}

	live, err := r.exists(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !live {
		return errNotFound()
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Board{})
	if res.Error != nil {
		return apperror.Wrap(apperror.KindDeleteFailed, MsgFailToDeleteBoard, res.Error)
	}
	if res.RowsAffected != 1 {
		return apperror.New(apperror.KindDeleteFailed, MsgFailToDeleteBoard)
	}
	return nil
}

// HardDeleteBoard removes the row whether or not it was soft-deleted and
// returns what was removed.
func (r *repository) HardDeleteBoard(ctx context.Context, id string) (*Board, error) {
	board, err := r.FindBoard(ctx, Filter{ID: id, IncludeDeleted: true})
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Unscoped().Where("id = ?", board.ID).Delete(&Board{})
	if res.Error != nil {
		return nil, apperror.Wrap(apperror.KindDeleteFailed, MsgFailToDeleteBoard, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errNotFound()
	}
	return board, nil
}

func (r *repository) IncrementViewCount(ctx context.Context, id string) (*Board, error) {
	id, ok := NormalizeID(id)
	if !ok {
		return nil, errNotFound()
	}

	res := r.db.WithContext(ctx).Model(&Board{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return nil, apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errNotFound()
	}

	return r.FindBoardByID(ctx, id)
}

func (r *repository) exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Board{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// filtered builds a fresh query for filter. It reports false when the filter
// can never match, e.g. a malformed id.
func (r *repository) filtered(ctx context.Context, filter Filter) (*gorm.DB, bool) {
	query := r.db.WithContext(ctx).Model(&Board{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}

	if filter.ID != "" {
		id, ok := NormalizeID(filter.ID)
		if !ok {
			return query, false
		}
		return query.Where("id = ?", id), true
	}

	if filter.Title != "" {
		query = query.Where(r.containsClause("title"), containsPattern(filter.Title))
	}
	if filter.Author != "" {
		query = query.Where(r.containsClause("author"), containsPattern(filter.Author))
	}
	return query, true
}

func (r *repository) containsClause(column string) string {
	if r.db.Dialector.Name() == "postgres" {
		return column + ` ILIKE ? ESCAPE '\'`
	}
	return "LOWER(" + column + `) LIKE LOWER(?) ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an unanchored LIKE pattern that
// matches the term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
