package model

type WorkoutPlan struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Day         string     `json:"day"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

type CreateWorkoutPlanRequest struct {
	Type        string   `json:"type"`
	Day         string   `json:"day"`
	Description string   `json:"description"`
	ExerciseIDs []string `json:"exercise_ids"`
}

type CreateWorkoutPlanResponse struct {
	Plan WorkoutPlan `json:"plan"`
}

type UpdateWorkoutPlanRequest struct {
	ID          string    `json:"id"`
	Type        *string   `json:"type"`
	Day         *string   `json:"day"`
	Description *string   `json:"description"`
	ExerciseIDs *[]string `json:"exercise_ids"`
}

type UpdateWorkoutPlanResponse struct {
	Plan WorkoutPlan `json:"plan"`
}

type DeleteWorkoutPlanRequest struct {
	ID string `json:"id"`
}

type DeleteWorkoutPlanResponse struct{}

type GetWorkoutPlanRequest struct {
	ID string `json:"id"`
}

type GetWorkoutPlanResponse struct {
	Plan WorkoutPlan `json:"plan"`
}

type GetWorkoutPlansRequest struct{}

type GetWorkoutPlansResponse struct {
	Plans []WorkoutPlan `json:"plans"`
}
