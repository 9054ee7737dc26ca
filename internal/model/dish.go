package model

type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Protein     float64 `json:"protein"`
}

type CreateDishRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Protein     float64 `json:"protein"`
}

type CreateDishResponse struct {
	Dish Dish `json:"dish"`
}

type UpdateDishRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Calories    *float64 `json:"calories"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Protein     *float64 `json:"protein"`
}

type UpdateDishResponse struct {
	Dish Dish `json:"dish"`
}

type DeleteDishRequest struct {
	ID string `json:"id"`
}

type DeleteDishResponse struct{}

type GetDishRequest struct {
	ID string `json:"id"`
}

type GetDishResponse struct {
	Dish Dish `json:"dish"`
}

type GetDishesRequest struct{}

type GetDishesResponse struct {
	Dishes []Dish `json:"dishes"`
}

type SearchDishesRequest struct {
	Query string `json:"query"`
}

type SearchDishesResponse struct {
	Dishes []Dish `json:"dishes"`
}
