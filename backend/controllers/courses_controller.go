package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnhub/backend/catalog"
	"learnhub/backend/progress"
	"learnhub/backend/utils"
)

type CoursesController struct {
	Catalog *catalog.Catalog
	Tracker *progress.Tracker
}

func NewCoursesController(cat *catalog.Catalog, tracker *progress.Tracker) *CoursesController {
	return &CoursesController{Catalog: cat, Tracker: tracker}
}

// GetCourses lists the catalog with the current user's completion percentage
// per course, the data the original home page cards were built from.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	var result []fiber.Map
	for _, course := range cc.Catalog.Courses() {
		cp, err := cc.Tracker.CourseProgress(course.ID)
		if err != nil {
			return utils.InternalServerError(c, "Could not load progress")
		}

		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"icon":        course.Icon,
			"duration":    course.Duration,
			"level":       course.Level,
			"lessons":     len(course.Lessons),
			"progress":    cp.Percentage,
			"completed":   cp.Percentage == 100,
		})
	}

	return c.JSON(result)
}

// GetCourseDetails returns one course with per-lesson completion flags and
// the progress summary.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, ok := cc.Catalog.Course(courseID)
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	cp, err := cc.Tracker.CourseProgress(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress")
	}

	completed := make(map[int]bool, len(cp.CompletedLessons))
	for _, id := range cp.CompletedLessons {
		completed[id] = true
	}

	lessons := make([]fiber.Map, len(course.Lessons))
	for i, lesson := range course.Lessons {
		lessons[i] = fiber.Map{
			"id":        lesson.ID,
			"title":     lesson.Title,
			"duration":  lesson.Duration,
			"content":   lesson.Content,
			"completed": completed[lesson.ID],
		}
	}

	return c.JSON(fiber.Map{
		"course": fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"icon":        course.Icon,
			"duration":    course.Duration,
			"level":       course.Level,
			"lessons":     lessons,
		},
		"progress": cp,
	})
}
