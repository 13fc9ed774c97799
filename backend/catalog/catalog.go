// Package catalog holds the static course catalog. The catalog is seeded once
// at construction and never mutated; all callers share it read-only.
package catalog

import "learnhub/backend/models"

type Catalog struct {
	courses []models.Course
}

// New returns a catalog seeded with the built-in courses.
func New() *Catalog {
	return &Catalog{courses: seedCourses()}
}

// NewWith returns a catalog holding the given courses instead of the built-in
// seed.
func NewWith(courses ...models.Course) *Catalog {
	return &Catalog{courses: courses}
}

// Courses returns all courses in their fixed order.
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Course looks up a course by id. The second result is false when no course
// matches; an unknown id is not an error.
func (c *Catalog) Course(id int) (models.Course, bool) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

// LessonCount returns the number of lessons in the course, or 0 when the
// course does not exist.
func (c *Catalog) LessonCount(id int) int {
	course, ok := c.Course(id)
	if !ok {
		return 0
	}
	return len(course.Lessons)
}
