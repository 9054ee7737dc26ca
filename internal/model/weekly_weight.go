package model

type WeeklyWeight struct {
	ID            string  `json:"id"`
	WeekNumber    int     `json:"week_number"`
	Year          int     `json:"year"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	AverageWeight float64 `json:"average_weight"`
}

type GetWeeklyWeightRequest struct {
	ID string `json:"id"`
}

type GetWeeklyWeightResponse struct {
	WeeklyWeight WeeklyWeight `json:"weekly_weight"`
}

type GetWeeklyWeightsRequest struct{}

type GetWeeklyWeightsResponse struct {
	WeeklyWeights []WeeklyWeight `json:"weekly_weights"`
}

type GetWeeklyWeightsByYearRequest struct {
	Year int `json:"year"`
}

type GetWeeklyWeightsByYearResponse struct {
	WeeklyWeights []WeeklyWeight `json:"weekly_weights"`
}

type GetWeeklyWeightsInRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetWeeklyWeightsInRangeResponse struct {
	WeeklyWeights []WeeklyWeight `json:"weekly_weights"`
}

type GetWeeklyWeightForDateRequest struct {
	Date string `json:"date"`
}

type GetWeeklyWeightForDateResponse struct {
	WeeklyWeight WeeklyWeight `json:"weekly_weight"`
}
