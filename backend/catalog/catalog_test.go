package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoursesStableOrder(t *testing.T) {
	cat := New()

	courses := cat.Courses()
	assert.Len(t, courses, 4)
	for i, course := range courses {
		assert.Equal(t, i+1, course.ID)
	}

	// same slice on every call
	assert.Equal(t, courses, cat.Courses())
}

func TestCourseLookup(t *testing.T) {
	cat := New()

	course, ok := cat.Course(2)
	assert.True(t, ok)
	assert.Equal(t, "Python Programming Masterclass", course.Title)
	assert.Equal(t, "Intermediate", course.Level)

	_, ok = cat.Course(99)
	assert.False(t, ok)
}

func TestLessonCount(t *testing.T) {
	cat := New()

	assert.Equal(t, 5, cat.LessonCount(1))
	assert.Equal(t, 6, cat.LessonCount(2))
	assert.Equal(t, 5, cat.LessonCount(3))
	assert.Equal(t, 6, cat.LessonCount(4))
	assert.Equal(t, 0, cat.LessonCount(99))
}

func TestLessonIDsUniqueWithinCourse(t *testing.T) {
	for _, course := range New().Courses() {
		seen := map[int]bool{}
		for _, id := range course.LessonIDs() {
			assert.Falsef(t, seen[id], "course %d repeats lesson id %d", course.ID, id)
			seen[id] = true
		}
	}
}
