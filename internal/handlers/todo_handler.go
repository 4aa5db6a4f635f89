package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dango/internal/errors"
	"dango/internal/services"
)

// TodoHandler handles to-do item requests
type TodoHandler struct {
	todoService services.TodoServicer
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService services.TodoServicer) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents the request payload for creating a to-do item
type CreateTodoRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required,max=500"`
	DueDate     string `json:"due_date" binding:"required,calendar_date"`
	Done        bool   `json:"done"`
}

// UpdateTodoRequest represents the partial-patch payload. The done-flag
// toggle from the list view sends only the done field.
type UpdateTodoRequest struct {
	Done        *bool   `json:"done"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	DueDate     *string `json:"due_date" binding:"omitempty,calendar_date"`
}

// CreateTodo handles the creation of a new to-do item
// @Summary     Create a to-do item
// @Description Create a new to-do item in an existing category
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTodoRequest true "To-do details"
// @Success     201 {object} models.TodoItem "To-do created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid due_date"))
		return
	}

	todo, err := h.todoService.CreateTodo(userID, req.CategoryID, req.Description, dueDate, req.Done)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Todo created",
		"data":    todo,
	})
}

// GetUserTodos handles listing the user's to-do items
// @Summary     List to-do items
// @Description Get all of the user's to-do items joined with their category names
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.TodoWithCategory "To-do items"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /todos [get]
func (h *TodoHandler) GetUserTodos(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todos, err := h.todoService.GetUserTodos(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": todos})
}

// UpdateTodo handles a partial update of a to-do item
// @Summary     Update a to-do item
// @Description Patch any subset of done, description, and due_date. At least one field is required.
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "To-do ID"
// @Param       request body UpdateTodoRequest true "Fields to update"
// @Success     200 {object} models.TodoItem "Updated to-do"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields supplied"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "To-do not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /todos/{id} [patch]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todoID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid due_date"))
			return
		}
		dueDate = &parsed
	}

	todo, err := h.todoService.UpdateTodo(userID, todoID, req.Done, req.Description, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo updated",
		"data":    todo,
	})
}

// DeleteTodo handles deletion of a to-do item
// @Summary     Delete a to-do item
// @Description Delete a to-do item by ID
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "To-do ID"
// @Success     200 {object} models.TodoItem "Deleted to-do"
// @Failure     400 {object} ErrorResponse "Invalid to-do ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "To-do not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todoID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.DeleteTodo(userID, todoID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted",
		"data":    todo,
	})
}
