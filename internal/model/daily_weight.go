package model

type DailyWeight struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type CreateDailyWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type CreateDailyWeightResponse struct {
	DailyWeight DailyWeight `json:"daily_weight"`
}

type UpdateDailyWeightRequest struct {
	ID     string   `json:"id"`
	Date   *string  `json:"date"`
	Weight *float64 `json:"weight"`
}

type UpdateDailyWeightResponse struct {
	DailyWeight DailyWeight `json:"daily_weight"`
}

type DeleteDailyWeightRequest struct {
	ID string `json:"id"`
}

type DeleteDailyWeightResponse struct{}

type GetDailyWeightRequest struct {
	ID string `json:"id"`
}

type GetDailyWeightResponse struct {
	DailyWeight DailyWeight `json:"daily_weight"`
}

type GetDailyWeightsRequest struct{}

type GetDailyWeightsResponse struct {
	DailyWeights []DailyWeight `json:"daily_weights"`
}

type GetDailyWeightsInRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetDailyWeightsInRangeResponse struct {
	DailyWeights []DailyWeight `json:"daily_weights"`
}
