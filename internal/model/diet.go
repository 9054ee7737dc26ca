package model

type Diet struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"total_calories"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalProtein  float64 `json:"total_protein"`
}

type CreateDietRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MealIDs     []string `json:"meal_ids"`
}

type CreateDietResponse struct {
	Diet Diet `json:"diet"`
}

type UpdateDietRequest struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	MealIDs     *[]string `json:"meal_ids"`
}

type UpdateDietResponse struct {
	Diet Diet `json:"diet"`
}

type DeleteDietRequest struct {
	ID string `json:"id"`
}

type DeleteDietResponse struct{}

type GetDietRequest struct {
	ID string `json:"id"`
}

type GetDietResponse struct {
	Diet Diet `json:"diet"`
}

type GetDietsRequest struct{}

type GetDietsResponse struct {
	Diets []Diet `json:"diets"`
}

type SearchDietsRequest struct {
	Query string `json:"query"`
}

type SearchDietsResponse struct {
	Diets []Diet `json:"diets"`
}

type GetDietMealRequest struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type GetDietMealResponse struct {
	Meal Meal `json:"meal"`
}
