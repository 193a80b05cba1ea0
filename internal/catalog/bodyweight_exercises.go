package catalog

// bodyweightExercises are performed without external load. Their sets store the bodyweight marker.
var bodyweightExercises = []string{
	"Push-Up (Bodyweight)",
	"Wide Push-Up (Bodyweight)",
	"Diamond Push-Up (Bodyweight)",
	"Decline Push-Up (Bodyweight)",
	"Incline Push-Up (Bodyweight)",
	"Archer Push-Up (Bodyweight)",
	"Typewriter Push-Up (Bodyweight)",
	"Hindu Push-Up (Bodyweight)",
	"Dive Bomber Push-Up (Bodyweight)",
	"Pseudo Planche Push-Up (Bodyweight)",
	"Clap Push-Up (Bodyweight)",
	"Plyo Push-Up (Bodyweight)",
	"One-Arm Push-Up (Bodyweight)",
	"Wall Push-Up (Bodyweight)",
	"Knee Push-Up (Bodyweight)",
	"Planche Push-Up (Bodyweight)",
	"Ring Push-Up (Bodyweight)",
	"Handstand Push-Up (Bodyweight)",
	"Pike Push-Up (Bodyweight)",
	"Elevated Pike Push-Up (Bodyweight)",
	"Shoulder Tap Push-Up (Bodyweight)",
	"Spiderman Push-Up (Bodyweight)",
	"Staggered Push-Up (Bodyweight)",
	"Pull-Up (Bodyweight)",
	"Chin-Up (Bodyweight)",
	"Wide-Grip Pull-Up (Bodyweight)",
	"Close-Grip Pull-Up (Bodyweight)",
	"Neutral-Grip Pull-Up (Bodyweight)",
	"Archer Pull-Up (Bodyweight)",
	"Commando Pull-Up (Bodyweight)",
	"One-Arm Pull-Up (Bodyweight)",
	"Typewriter Pull-Up (Bodyweight)",
	"Explosive Pull-Up (Bodyweight)",
	"Towel Pull-Up (Bodyweight)",
	"Ring Pull-Up (Bodyweight)",
	"Scapular Pull-Up (Bodyweight)",
	"Negative Pull-Up (Bodyweight)",
	"Jumping Pull-Up (Bodyweight)",
	"Triceps Dips (Bodyweight)",
	"Parallel Bar Dips (Bodyweight)",
	"Korean Dips (Bodyweight)",
	"Straight Bar Dips (Bodyweight)",
	"Ring Dips (Bodyweight)",
	"Chair Dips (Bodyweight)",
	"L-Sit Dips (Bodyweight)",
	"Chest Dips (Bodyweight)",
	"Jump to Dip Negatives (Bodyweight)",
	"Sit-Up (Bodyweight)",
	"Crunch (Bodyweight)",
	"Reverse Crunch (Bodyweight)",
	"Bicycle Crunch (Bodyweight)",
	"Cross-Body Crunch (Bodyweight)",
	"Toe Touch (Bodyweight)",
	"Leg Raise (Bodyweight)",
	"Lying Leg Raise (Bodyweight)",
	"Hanging Knee Raise (Bodyweight)",
	"V-Up (Bodyweight)",
	"Hollow Body Hold (Bodyweight)",
	"Flutter Kicks (Bodyweight)",
	"Scissor Kicks (Bodyweight)",
	"Mountain Climbers (Bodyweight)",
	"Dead Bug (Bodyweight)",
	"Plank to Push-Up (Bodyweight)",
	"Side Plank Dips (Bodyweight)",
	"Russian Twists (Bodyweight)",
	"Seated In-and-Outs (Bodyweight)",
	"Plank Shoulder Taps (Bodyweight)",
	"Bird Dog Crunch (Bodyweight)",
	"Straight-Leg Sit-Up (Bodyweight)",
	"Wiper Kicks (Bodyweight)",
	"Jackknife Sit-Up (Bodyweight)",
	"Air Squat (Bodyweight)",
	"Narrow-Stance Squat (Bodyweight)",
	"Sumo Squat (Bodyweight)",
	"Wall Sit (Bodyweight)",
	"Bulgarian Split Squat (Bodyweight)",
	"Jump Squat (Bodyweight)",
	"Pause Squat (Bodyweight)",
	"Pistol Squat (Bodyweight)",
	"Assisted Pistol Squat (Bodyweight)",
	"Shrimp Squat (Bodyweight)",
	"Step-Up (Bodyweight)",
	"Glute Bridge (Bodyweight)",
	"Marching Glute Bridge (Bodyweight)",
	"Single-Leg Glute Bridge (Bodyweight)",
	"Frog Pump (Bodyweight)",
	"Hip Thrust (Bodyweight)",
	"Donkey Kick (Bodyweight)",
	"Fire Hydrant (Bodyweight)",
	"Side-Lying Leg Raise (Bodyweight)",
	"Curtsy Lunge (Bodyweight)",
	"Walking Lunge (Bodyweight)",
	"Reverse Lunge (Bodyweight)",
	"Forward Lunge (Bodyweight)",
	"Jumping Lunge (Bodyweight)",
	"Wall Lunge (Bodyweight)",
	"Calf Raise (Bodyweight)",
	"Single-Leg Calf Raise (Bodyweight)",
	"Seated Calf Raise (Bodyweight)",
	"Burpee (Bodyweight)",
	"Half Burpee (Bodyweight)",
	"Star Jump (Bodyweight)",
	"High Knees (Bodyweight)",
	"Jumping Jack (Bodyweight)",
	"Skater Jump (Bodyweight)",
	"Tuck Jump (Bodyweight)",
	"Bear Crawl (Bodyweight)",
	"Crab Walk (Bodyweight)",
	"Lateral Lunge (Bodyweight)",
	"Step-Through (Bodyweight)",
	"Frog Jump (Bodyweight)",
	"Squat to Jump (Bodyweight)",
	"Mountain Climber Twist (Bodyweight)",
	"Inchworm (Bodyweight)",
	"Sprawl (Bodyweight)",
	"Lunge to Knee Drive (Bodyweight)",
	"Jumping Switch Lunge (Bodyweight)",
	"Muscle-Up (Bodyweight)",
	"Front Lever Pulls (Bodyweight)",
	"Back Lever Raises (Bodyweight)",
	"Dragon Flag (Bodyweight)",
	"L-Sit to Handstand (Bodyweight)",
	"Human Flag Raises (Bodyweight)",
	"Skin the Cat (Bodyweight)",
	"Wall Walks (Bodyweight)",
	"Planche Leans (Bodyweight)",
}
