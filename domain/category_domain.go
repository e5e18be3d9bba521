package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessGetCategories  = "success get categories"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedGetCategories  = "failed to get categories"

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
