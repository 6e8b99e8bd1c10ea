package search

import "github.com/mamadbah2/fittrack/internal/domain/models"

func sampleFoods() []models.FoodItem {
	return []models.FoodItem{
		{FoodName: "Petto di pollo", Calories: 165, ProteinG: 31, CarbohydratesTotalG: 0, FatTotalG: 3.6},
		{FoodName: "Riso basmati (100g)", Calories: 130, ProteinG: 2.7, CarbohydratesTotalG: 28, FatTotalG: 0.3},
		{FoodName: "Avocado (1/2)", Calories: 120, ProteinG: 1.5, CarbohydratesTotalG: 6, FatTotalG: 10},
	}
}

func sampleExercises() []models.ExerciseItem {
	return []models.ExerciseItem{
		sampleExercise("Push-up", "petto", "body weight", "torace"),
		sampleExercise("Squat", "gambe", "body weight", "gambe"),
		sampleExercise("Plank", "core", "tappetino", "addome"),
	}
}

func sampleExercise(name, target, equipment, bodyPart string) models.ExerciseItem {
	return models.ExerciseItem{Name: &name, Target: &target, Equipment: &equipment, BodyPart: &bodyPart}
}
