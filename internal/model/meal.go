package model

type Meal struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Dishes        []Dish  `json:"dishes"`
	TotalCalories float64 `json:"total_calories"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalProtein  float64 `json:"total_protein"`
}

type CreateMealRequest struct {
	Type    string   `json:"type"`
	DishIDs []string `json:"dish_ids"`
}

type CreateMealResponse struct {
	Meal Meal `json:"meal"`
}

type UpdateMealRequest struct {
	ID      string    `json:"id"`
	Type    *string   `json:"type"`
	DishIDs *[]string `json:"dish_ids"`
}

type UpdateMealResponse struct {
	Meal Meal `json:"meal"`
}

type DeleteMealRequest struct {
	ID string `json:"id"`
}

type DeleteMealResponse struct{}

type GetMealRequest struct {
	ID string `json:"id"`
}

type GetMealResponse struct {
	Meal Meal `json:"meal"`
}

type GetMealsRequest struct{}

type GetMealsResponse struct {
	Meals []Meal `json:"meals"`
}
