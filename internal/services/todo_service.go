package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "dango/internal/errors"
	"dango/internal/models"
)

// todoService handles to-do item business logic.
type todoService struct {
	db *gorm.DB
}

// NewTodoService creates a new TodoServicer.
func NewTodoService(db *gorm.DB) TodoServicer {
	return &todoService{db: db}
}

// CreateTodo creates a new to-do item. The category must exist and belong
// to the same user; dangling category references are rejected up-front.
func (s *todoService) CreateTodo(userID, categoryID, description string, dueDate time.Time, done bool) (*models.TodoItem, error) {
	if categoryID == "" || description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category and description are required")
	}

	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	todo := &models.TodoItem{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: description,
		DueDate:     dueDate,
		Done:        done,
	}

	if err := s.db.Create(todo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return todo, nil
}

// GetUserTodos retrieves all of a user's to-do items joined with their
// category names.
func (s *todoService) GetUserTodos(userID string) ([]TodoWithCategory, error) {
	todos := []TodoWithCategory{}
	if err := s.db.Model(&models.TodoItem{}).
		Select("todo_items.id, todo_items.user_id, todo_items.category_id, categories.name AS category_name, todo_items.description, todo_items.due_date, todo_items.done").
		Joins("INNER JOIN categories ON categories.id = todo_items.category_id").
		Where("todo_items.user_id = ?", userID).
		Order("todo_items.due_date ASC").
		Scan(&todos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return todos, nil
}

// UpdateTodo applies a partial patch over done, description, and due date.
// The done-flag toggle from the list view arrives here with only the done
// field set. Supplying no fields is a client error.
func (s *todoService) UpdateTodo(userID, todoID string, done *bool, description *string, dueDate *time.Time) (*models.TodoItem, error) {
	todo, err := s.getTodoByID(userID, todoID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if done != nil {
		updates["done"] = *done
	}
	if description != nil {
		updates["description"] = *description
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}

	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No fields to update")
	}

	if err := s.db.Model(todo).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return todo, nil
}

// DeleteTodo removes a to-do item and returns the deleted row.
func (s *todoService) DeleteTodo(userID, todoID string) (*models.TodoItem, error) {
	todo, err := s.getTodoByID(userID, todoID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(todo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return todo, nil
}

func (s *todoService) getTodoByID(userID, todoID string) (*models.TodoItem, error) {
	var todo models.TodoItem
	if err := s.db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &todo, nil
}
