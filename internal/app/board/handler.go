package board

import (
	"net/http"
	"strconv"

	"board-api/internal/apperror"
	"board-api/internal/pagination"
	"board-api/internal/response"
	"board-api/internal/validation"

	"github.com/gin-gonic/gin"
)

const TotalPagesHeader = "X-Total-Pages"

type Handler interface {
	CreateBoard(c *gin.Context)
	GetBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
	PurgeBoard(c *gin.Context)
}

type handler struct {
	service     Service
	maxPageSize int
}

func NewHandler(service Service, maxPageSize int) Handler {
	return &handler{service: service, maxPageSize: maxPageSize}
}

// @Summary Create board
// @Description Create a new board post
// @Tags Board
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Error message language (ko, en)"
// @Param body body CreateBoardInput true "Board to create"
// @Success 201 {object} response.ObjectResponse[BoardResponse]
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	var input CreateBoardInput
	if err := validation.BindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	board, err := h.service.GenerateBoard(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response.Object(NewBoardResponse(board)))
}

// @Summary List boards
// @Description List live boards, newest first, filtered by case-insensitive title/author substrings
// @Tags Board
// @Produce json
// @Param title query string false "Title keyword"
// @Param author query string false "Author keyword"
// @Param id query string false "Board id"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1)
// @Success 200 {object} response.ListResponse[BoardListItem]
// @Header 200 {integer} X-Total-Pages "Total number of pages"
// @Router /boards [get]
func (h *handler) GetBoards(c *gin.Context) {
	var filter Filter
	if err := validation.BindQuery(c, &filter); err != nil {
		_ = c.Error(err)
		return
	}
	page := pagination.FromQuery(c, h.maxPageSize)

	result, err := h.service.GetBoardListAndCount(c.Request.Context(), filter, &page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header(TotalPagesHeader, strconv.FormatInt(result.TotalPages, 10))
	c.JSON(http.StatusOK, response.List(NewBoardListItems(result.Rows), result.Count))
}

// @Summary Get board
// @Description Get a board by id. Every successful call increments its view count.
// @Tags Board
// @Produce json
// @Param id path string true "Board id (uuid)"
// @Success 200 {object} response.ObjectResponse[BoardResponse]
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /boards/{id} [get]
func (h *handler) GetBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	board, err := h.service.ViewBoard(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.Object(NewBoardResponse(board)))
}

// @Summary Update board
// @Description Partially update a live board
// @Tags Board
// @Accept json
// @Produce json
// @Param id path string true "Board id (uuid)"
// @Param body body UpdateBoardInput true "Fields to change"
// @Success 200 {object} response.ObjectResponse[BoardResponse]
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /boards/{id} [put]
func (h *handler) UpdateBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	var input UpdateBoardInput
	if err := validation.BindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	board, err := h.service.ModifyBoard(c.Request.Context(), id, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.Object(NewBoardResponse(board)))
}

// @Summary Delete board
// @Description Soft-delete a board
// @Tags Board
// @Param id path string true "Board id (uuid)"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveBoard(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Permanently delete board
// @Description Remove a board from storage, including soft-deleted ones
// @Tags Board
// @Param id path string true "Board id (uuid)"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /boards/{id}/permanent [delete]
func (h *handler) PurgeBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	if _, err := h.service.PurgeBoard(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func boardID(c *gin.Context) (string, bool) {
	id, ok := NormalizeID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.New(apperror.KindBadRequest, MsgInvalidBoardID))
		return "", false
	}
	return id, true
}
