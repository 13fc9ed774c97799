package models

import "time"

// ProgressRecord is one user's completion state across all courses, stored
// under the "user_progress" key in a map keyed by user id.
type ProgressRecord struct {
	Courses     map[int]CourseRecord `json:"courses"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// CourseRecord holds the completed lesson ids for a single course. The slice
// has set semantics: no duplicates, order not significant.
type CourseRecord struct {
	CompletedLessons []int `json:"completedLessons"`
}

// NewProgressRecord returns an empty record stamped with the given time.
func NewProgressRecord(now time.Time) ProgressRecord {
	return ProgressRecord{Courses: map[int]CourseRecord{}, LastUpdated: now}
}

// Completed reports whether lessonID is in the course's completed set.
func (r ProgressRecord) Completed(courseID, lessonID int) bool {
	for _, id := range r.Courses[courseID].CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// CourseProgress is the derived completion summary for a single course.
type CourseProgress struct {
	Completed        int   `json:"completed"`
	Total            int   `json:"total"`
	Percentage       int   `json:"percentage"`
	CompletedLessons []int `json:"completedLessons"`
}

// Overview aggregates completion state across the whole catalog.
type Overview struct {
	TotalCourses      int `json:"totalCourses"`
	CompletedCourses  int `json:"completedCourses"`
	InProgressCourses int `json:"inProgressCourses"`
}
