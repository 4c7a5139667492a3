package contracts

import "finsight/internal/domain/category"

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Type string `json:"type" binding:"required,oneof=expense income"`
	Icon string `json:"icon" binding:"omitempty,max=50"`
}

type CategoryUpdateRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Icon *string `json:"icon" binding:"omitempty,max=50"`
}

type CategoryCreateResponse struct {
	Message  string             `json:"message"`
	Category *category.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int64                `json:"total"`
}

type CategorySingleResponse struct {
	Category *category.Category `json:"category"`
}
