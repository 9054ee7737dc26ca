package model

type ExerciseTrackPoint struct {
	ID          string `json:"id"`
	ExerciseID  string `json:"exercise_id"`
	Date        string `json:"date"`
	SetsCount   int    `json:"sets_count"`
	RepsCount   int    `json:"reps_count"`
	Description string `json:"description"`
}

type CreateTrackPointRequest struct {
	ExerciseID  string `json:"exercise_id"`
	Date        string `json:"date"`
	SetsCount   int    `json:"sets_count"`
	RepsCount   int    `json:"reps_count"`
	Description string `json:"description"`
}

type CreateTrackPointResponse struct {
	TrackPoint ExerciseTrackPoint `json:"track_point"`
}

type UpdateTrackPointRequest struct {
	ID          string  `json:"id"`
	Date        *string `json:"date"`
	SetsCount   *int    `json:"sets_count"`
	RepsCount   *int    `json:"reps_count"`
	Description *string `json:"description"`
}

type UpdateTrackPointResponse struct {
	TrackPoint ExerciseTrackPoint `json:"track_point"`
}

type DeleteTrackPointRequest struct {
	ID string `json:"id"`
}

type DeleteTrackPointResponse struct{}

type GetTrackPointRequest struct {
	ID string `json:"id"`
}

type GetTrackPointResponse struct {
	TrackPoint ExerciseTrackPoint `json:"track_point"`
}

type GetTrackPointsByExerciseRequest struct {
	ExerciseID string `json:"exercise_id"`
}

type GetTrackPointsByExerciseResponse struct {
	TrackPoints []ExerciseTrackPoint `json:"track_points"`
}
