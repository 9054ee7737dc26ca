package model

import (
	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/dateutil"
)

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		Role:           user.Role,
	}
}

func ConvertDish(dish *entity.Dish) Dish {
	if dish == nil {
		return Dish{}
	}

	return Dish{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Calories:    dish.Calories,
		Carbs:       dish.Carbs,
		Fat:         dish.Fat,
		Protein:     dish.Protein,
	}
}

func ConvertDishes(dishes []entity.Dish) []Dish {
	result := make([]Dish, 0, len(dishes))
	for i := range dishes {
		result = append(result, ConvertDish(&dishes[i]))
	}

	return result
}

func ConvertMeal(meal *entity.Meal) Meal {
	if meal == nil {
		return Meal{}
	}

	converted := Meal{
		ID:     meal.ID,
		Type:   string(meal.Type),
		Dishes: ConvertDishes(meal.Dishes),
	}

	for _, dish := range meal.Dishes {
		converted.TotalCalories += dish.Calories
		converted.TotalCarbs += dish.Carbs
		converted.TotalFat += dish.Fat
		converted.TotalProtein += dish.Protein
	}

	return converted
}

func ConvertMeals(meals []entity.Meal) []Meal {
	result := make([]Meal, 0, len(meals))
	for i := range meals {
		result = append(result, ConvertMeal(&meals[i]))
	}

	return result
}

func ConvertDiet(diet *entity.Diet) Diet {
	if diet == nil {
		return Diet{}
	}

	converted := Diet{
		ID:          diet.ID,
		Name:        diet.Name,
		Description: diet.Description,
		Meals:       ConvertMeals(diet.Meals),
	}

	for _, meal := range converted.Meals {
		converted.TotalCalories += meal.TotalCalories
		converted.TotalCarbs += meal.TotalCarbs
		converted.TotalFat += meal.TotalFat
		converted.TotalProtein += meal.TotalProtein
	}

	return converted
}

func ConvertDiets(diets []entity.Diet) []Diet {
	result := make([]Diet, 0, len(diets))
	for i := range diets {
		result = append(result, ConvertDiet(&diets[i]))
	}

	return result
}

func ConvertExerciseCategory(category *entity.ExerciseCategory) ExerciseCategory {
	if category == nil {
		return ExerciseCategory{}
	}

	return ExerciseCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func ConvertExerciseCategories(categories []entity.ExerciseCategory) []ExerciseCategory {
	result := make([]ExerciseCategory, 0, len(categories))
	for i := range categories {
		result = append(result, ConvertExerciseCategory(&categories[i]))
	}

	return result
}

func ConvertExercise(exercise *entity.Exercise) Exercise {
	if exercise == nil {
		return Exercise{}
	}

	return Exercise{
		ID:          exercise.ID,
		Name:        exercise.Name,
		Description: exercise.Description,
		Category:    ConvertExerciseCategory(&exercise.Category),
	}
}

func ConvertExercises(exercises []entity.Exercise) []Exercise {
	result := make([]Exercise, 0, len(exercises))
	for i := range exercises {
		result = append(result, ConvertExercise(&exercises[i]))
	}

	return result
}

func ConvertTrackPoint(point *entity.ExerciseTrackPoint) ExerciseTrackPoint {
	if point == nil {
		return ExerciseTrackPoint{}
	}

	return ExerciseTrackPoint{
		ID:          point.ID,
		ExerciseID:  point.ExerciseID,
		Date:        dateutil.FormatDate(point.Date),
		SetsCount:   point.SetsCount,
		RepsCount:   point.RepsCount,
		Description: point.Description,
	}
}

func ConvertTrackPoints(points []entity.ExerciseTrackPoint) []ExerciseTrackPoint {
	result := make([]ExerciseTrackPoint, 0, len(points))
	for i := range points {
		result = append(result, ConvertTrackPoint(&points[i]))
	}

	return result
}

func ConvertWorkoutPlan(plan *entity.WorkoutPlan) WorkoutPlan {
	if plan == nil {
		return WorkoutPlan{}
	}

	return WorkoutPlan{
		ID:          plan.ID,
		Type:        string(plan.Type),
		Day:         string(plan.Day),
		Description: plan.Description,
		Exercises:   ConvertExercises(plan.Exercises),
	}
}

func ConvertWorkoutPlans(plans []entity.WorkoutPlan) []WorkoutPlan {
	result := make([]WorkoutPlan, 0, len(plans))
	for i := range plans {
		result = append(result, ConvertWorkoutPlan(&plans[i]))
	}

	return result
}

func ConvertDailyWeight(weight *entity.DailyWeight) DailyWeight {
	if weight == nil {
		return DailyWeight{}
	}

	return DailyWeight{
		ID:     weight.ID,
		Date:   dateutil.FormatDate(weight.Date),
		Weight: weight.Weight,
	}
}

func ConvertDailyWeights(weights []entity.DailyWeight) []DailyWeight {
	result := make([]DailyWeight, 0, len(weights))
	for i := range weights {
		result = append(result, ConvertDailyWeight(&weights[i]))
	}

	return result
}

func ConvertWeeklyWeight(weight *entity.WeeklyWeight) WeeklyWeight {
	if weight == nil {
		return WeeklyWeight{}
	}

	return WeeklyWeight{
		ID:            weight.ID,
		WeekNumber:    weight.WeekNumber,
		Year:          weight.Year,
		StartDate:     dateutil.FormatDate(weight.StartDate),
		EndDate:       dateutil.FormatDate(weight.EndDate),
		AverageWeight: weight.AverageWeight,
	}
}

func ConvertWeeklyWeights(weights []entity.WeeklyWeight) []WeeklyWeight {
	result := make([]WeeklyWeight, 0, len(weights))
	for i := range weights {
		result = append(result, ConvertWeeklyWeight(&weights[i]))
	}

	return result
}
