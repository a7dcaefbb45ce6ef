package domain

// DefaultPlans returns the built-in weekly template set used to seed a new
// user's plans on first use. Saturday and Sunday are rest days with no
// exercises.
func DefaultPlans() map[string]*Plan {
	return map[string]*Plan{
		"monday": {
			Type: "Chest Biceps Core",
			Exercises: []Exercise{
				{Name: "Incline DB Curls", Sets: []Set{
					{Weight: "10", Reps: 15}, {Weight: "10", Reps: 8}, {Weight: "10", Reps: 7},
				}},
				{Name: "Concentration Curls", Sets: []Set{
					{Weight: "12", Reps: 11}, {Weight: "12", Reps: 9}, {Weight: "12", Reps: 9},
				}},
				{Name: "Bench Press", Sets: []Set{
					{Weight: "40", Reps: 15}, {Weight: "40", Reps: 10}, {Weight: "40", Reps: 8},
				}},
				{Name: "DB Flyes", Sets: []Set{
					{Weight: "9", Reps: 12}, {Weight: "9", Reps: 12}, {Weight: "9", Reps: 12},
				}},
				{Name: "Core", Sets: []Set{
					{Weight: "70", Reps: 20}, {Weight: "70", Reps: 20}, {Weight: "70", Reps: 15},
				}},
			},
		},
		"tuesday": {
			Type: "Legs",
			Exercises: []Exercise{
				{Name: "Cube", Sets: []Set{
					{Weight: "20", Reps: 15}, {Weight: "20", Reps: 15},
				}},
				{Name: "Leg Machine", Sets: []Set{
					{Weight: "60", Reps: 20}, {Weight: "60", Reps: 15}, {Weight: "60", Reps: 13},
				}},
				{Name: "Calves Machine", Sets: []Set{
					{Weight: "60", Reps: 25}, {Weight: "60", Reps: 20},
				}},
			},
		},
		"wednesday": {
			Type: "Back Triceps Core",
			Exercises: []Exercise{
				{Name: "Pull-ups", Sets: []Set{
					{Weight: "71", Reps: 6},
				}},
				{Name: "Rowing Machine", Sets: []Set{
					{Weight: "45", Reps: 20}, {Weight: "45", Reps: 15}, {Weight: "45", Reps: 15},
				}},
				{Name: "Triceps", Sets: []Set{
					{Weight: "9", Reps: 15}, {Weight: "9", Reps: 10}, {Weight: "9", Reps: 10},
				}},
				{Name: "Core", Sets: []Set{
					{Weight: "70", Reps: 20}, {Weight: "70", Reps: 20}, {Weight: "70", Reps: 15},
				}},
			},
		},
		"thursday": {
			Type: "Chest Biceps",
			Exercises: []Exercise{
				{Name: "Incline DB Curls", Sets: []Set{
					{Weight: "10", Reps: 15}, {Weight: "10", Reps: 8}, {Weight: "10", Reps: 7},
				}},
				{Name: "Concentration Curls", Sets: []Set{
					{Weight: "12", Reps: 11}, {Weight: "12", Reps: 9}, {Weight: "12", Reps: 9},
				}},
				{Name: "Bench Press", Sets: []Set{
					{Weight: "40", Reps: 15}, {Weight: "40", Reps: 10}, {Weight: "40", Reps: 8},
				}},
				{Name: "DB Flyes", Sets: []Set{
					{Weight: "9", Reps: 12}, {Weight: "9", Reps: 12}, {Weight: "9", Reps: 12},
				}},
			},
		},
		"friday": {
			Type: "Shoulders Back Core",
			Exercises: []Exercise{
				{Name: "Overhead Press", Sets: []Set{
					{Weight: "22", Reps: 16}, {Weight: "22", Reps: 8}, {Weight: "22", Reps: 7},
				}},
				{Name: "Cable Shoulders", Sets: []Set{
					{Weight: "10", Reps: 16}, {Weight: "10", Reps: 15}, {Weight: "10", Reps: 14},
				}},
				{Name: "Lat Pulldowns", Sets: []Set{
					{Weight: "55", Reps: 18}, {Weight: "55", Reps: 10}, {Weight: "55", Reps: 8},
				}},
				{Name: "Core", Sets: []Set{
					{Weight: "70", Reps: 20}, {Weight: "70", Reps: 20}, {Weight: "70", Reps: 15},
				}},
			},
		},
		"saturday": {Type: "Rest", Exercises: []Exercise{}},
		"sunday":   {Type: "Rest", Exercises: []Exercise{}},
	}
}
