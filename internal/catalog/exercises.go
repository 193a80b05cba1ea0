package catalog

// commonExercises are the staple lifts. Suggestions that overlap them rank higher.
var commonExercises = []string{
	"Barbell Squat",
	"Barbell Deadlift",
	"Barbell Bench Press",
	"Barbell Overhead Press",
	"Pull-Up",
	"Chin-Up",
	"Push-Up",
	"Dumbbell Bench Press",
	"Dumbbell Shoulder Press",
	"Dumbbell Lateral Raise",
	"Dumbbell Curl",
	"Hammer Curl",
	"Skull Crushers",
	"Triceps Pushdown",
	"Lat Pulldown",
	"Seated Cable Row",
	"Barbell Row",
	"Face Pull",
	"Dumbbell Row",
	"Cable Crossover",
	"Pec Deck Machine",
	"Leg Press",
	"Walking Lunge",
	"Goblet Squat",
	"Dumbbell Romanian Deadlift",
	"Hip Thrust",
	"Glute Bridge",
	"Leg Curl Machine",
	"Leg Extension Machine",
	"Calf Raise",
	"Plank",
	"Russian Twist",
	"Hanging Leg Raise",
	"Weighted Sit-Up",
	"Kettlebell Swing",
	"Box Jump",
	"Battle Ropes",
	"Jump Rope",
	"Step-Up",
	"Bulgarian Split Squat",
	"Cable Crunch",
	"Sled Push",
	"Inverted Row",
	"Dip",
	"Incline Barbell Bench Press",
	"Incline Dumbbell Press",
	"Decline Bench Press",
	"Barbell Curl",
	"Trap Bar Deadlift",
	"Farmer's Walk",
}

// loadedExercises extend the common list with less frequent variations.
var loadedExercises = []string{
	// chest
	"Close-Grip Bench Press",
	"Floor Press",
	"Machine Chest Press",
	"Smith Machine Bench Press",
	"Incline Smith Machine Press",
	"Dumbbell Fly",
	"Incline Dumbbell Fly",
	"Low-to-High Cable Fly",
	"High-to-Low Cable Fly",
	"Dumbbell Pullover",
	"Weighted Dip",
	"Landmine Press",

	// back
	"Pendlay Row",
	"T-Bar Row",
	"Chest-Supported Dumbbell Row",
	"Meadows Row",
	"Machine Row",
	"Single-Arm Cable Row",
	"Close-Grip Lat Pulldown",
	"Wide-Grip Lat Pulldown",
	"Straight-Arm Pulldown",
	"Weighted Pull-Up",
	"Weighted Chin-Up",
	"Rack Pull",
	"Sumo Deadlift",
	"Deficit Deadlift",
	"Good Morning",
	"Back Extension",
	"Barbell Shrug",
	"Dumbbell Shrug",

	// shoulders
	"Seated Dumbbell Press",
	"Arnold Press",
	"Push Press",
	"Behind-the-Neck Press",
	"Machine Shoulder Press",
	"Cable Lateral Raise",
	"Machine Lateral Raise",
	"Dumbbell Front Raise",
	"Plate Front Raise",
	"Reverse Pec Deck",
	"Bent-Over Dumbbell Reverse Fly",
	"Upright Row",

	// arms
	"EZ-Bar Curl",
	"Incline Dumbbell Curl",
	"Preacher Curl",
	"Concentration Curl",
	"Cable Curl",
	"Spider Curl",
	"Reverse Curl",
	"Rope Hammer Curl",
	"Overhead Triceps Extension",
	"Cable Overhead Triceps Extension",
	"Single-Arm Triceps Pushdown",
	"Rope Triceps Pushdown",
	"Dumbbell Kickback",
	"JM Press",
	"Wrist Curl",
	"Reverse Wrist Curl",

	// legs
	"Front Squat",
	"Box Squat",
	"Pause Squat",
	"Safety Bar Squat",
	"Zercher Squat",
	"Hack Squat",
	"Smith Machine Squat",
	"Belt Squat",
	"Barbell Romanian Deadlift",
	"Stiff-Leg Deadlift",
	"Single-Leg Romanian Deadlift",
	"Barbell Lunge",
	"Dumbbell Lunge",
	"Reverse Lunge",
	"Lateral Lunge",
	"Dumbbell Step-Up",
	"Seated Leg Curl",
	"Lying Leg Curl",
	"Nordic Hamstring Curl",
	"Barbell Hip Thrust",
	"Cable Pull-Through",
	"Cable Kickback",
	"Hip Abduction Machine",
	"Hip Adduction Machine",
	"Standing Calf Raise",
	"Seated Calf Raise",
	"Leg Press Calf Raise",
	"Single-Leg Press",

	// core
	"Ab Wheel Rollout",
	"Pallof Press",
	"Cable Woodchopper",
	"Weighted Plank",
	"Decline Sit-Up",
	"Landmine Rotation",
	"Weighted Russian Twist",
	"Suitcase Carry",

	// full body and conditioning
	"Power Clean",
	"Hang Clean",
	"Clean and Jerk",
	"Snatch",
	"Thruster",
	"Kettlebell Goblet Squat",
	"Kettlebell Clean",
	"Kettlebell Snatch",
	"Turkish Get-Up",
	"Sled Pull",
	"Medicine Ball Slam",
	"Wall Ball",
	"Rowing Machine",
	"Assault Bike",
	"Treadmill Run",
	"Stair Climber",
}
