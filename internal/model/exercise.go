package model

type Exercise struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    ExerciseCategory `json:"category"`
}

type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

type CreateExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

type UpdateExerciseRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
}

type UpdateExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

type DeleteExerciseRequest struct {
	ID string `json:"id"`
}

type DeleteExerciseResponse struct{}

type GetExerciseRequest struct {
	ID string `json:"id"`
}

type GetExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

type GetExercisesRequest struct{}

type GetExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type SearchExercisesRequest struct {
	Query string `json:"query"`
}

type SearchExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type GetExercisesByCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

type GetExercisesByCategoryResponse struct {
	Exercises []Exercise `json:"exercises"`
}
