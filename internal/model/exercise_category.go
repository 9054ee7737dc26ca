package model

type ExerciseCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateExerciseCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateExerciseCategoryResponse struct {
	Category ExerciseCategory `json:"category"`
}

type UpdateExerciseCategoryRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateExerciseCategoryResponse struct {
	Category ExerciseCategory `json:"category"`
}

type DeleteExerciseCategoryRequest struct {
	ID string `json:"id"`
}

type DeleteExerciseCategoryResponse struct{}

type GetExerciseCategoryRequest struct {
	ID string `json:"id"`
}

type GetExerciseCategoryResponse struct {
	Category ExerciseCategory `json:"category"`
}

type GetExerciseCategoriesRequest struct{}

type GetExerciseCategoriesResponse struct {
	Categories []ExerciseCategory `json:"categories"`
}
