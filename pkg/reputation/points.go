package reputation

import "math"

// Point weights for submitter activity.
const (
	PointsPerSubmission = 10
	PointsPerCompletion = 25
	PointsPerHighRating = 5
	RatingBonusCutoff   = 4.0

	// Levels advance every 100 points.
	PointsPerLevel = 100
)

// PointsForActivity converts raw activity counts into reputation points.
// A high-rating bonus applies once per evaluation rated at or above the
// cutoff.
func PointsForActivity(projectsSubmitted, completedProjects, highRatedEvaluations int) int {
	if projectsSubmitted < 0 {
		projectsSubmitted = 0
	}
	if completedProjects < 0 {
		completedProjects = 0
	}
	if highRatedEvaluations < 0 {
		highRatedEvaluations = 0
	}
	return projectsSubmitted*PointsPerSubmission +
		completedProjects*PointsPerCompletion +
		highRatedEvaluations*PointsPerHighRating
}

// LevelForPoints derives the level from a point total. Level is a pure
// function of total points and starts at 1.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/PointsPerLevel + 1
}

// CompletionRate returns the completed share of submitted projects as a
// percentage in [0,100].
func CompletionRate(submitted, completed int) float64 {
	if submitted <= 0 {
		return 0
	}
	if completed > submitted {
		completed = submitted
	}
	return math.Floor(100*float64(completed)/float64(submitted)*100+0.5) / 100
}
