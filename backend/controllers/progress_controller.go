package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnhub/backend/catalog"
	"learnhub/backend/progress"
	"learnhub/backend/utils"
)

type ProgressController struct {
	Catalog *catalog.Catalog
	Tracker *progress.Tracker
}

func NewProgressController(cat *catalog.Catalog, tracker *progress.Tracker) *ProgressController {
	return &ProgressController{Catalog: cat, Tracker: tracker}
}

// GetProgress returns the current user's raw progress record.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	record, ok, err := pc.Tracker.Progress()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress")
	}
	if !ok {
		return utils.Unauthorized(c, "Not logged in")
	}
	return c.JSON(record)
}

// ToggleLesson flips one lesson's completed state and returns the updated
// course summary.
func (pc *ProgressController) ToggleLesson(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	course, ok := pc.Catalog.Course(courseID)
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	if !course.HasLesson(lessonID) {
		return utils.NotFound(c, "Lesson not found")
	}

	if err := pc.Tracker.ToggleLesson(courseID, lessonID); err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	cp, err := pc.Tracker.CourseProgress(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress")
	}
	return utils.Success(c, fiber.StatusOK, "Progress updated", cp)
}

// MarkCourseComplete marks every lesson of the course as completed.
func (pc *ProgressController) MarkCourseComplete(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if _, ok := pc.Catalog.Course(courseID); !ok {
		return utils.NotFound(c, "Course not found")
	}

	if err := pc.Tracker.MarkCourseComplete(courseID); err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	cp, err := pc.Tracker.CourseProgress(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress")
	}
	return utils.Success(c, fiber.StatusOK, "Course completed", cp)
}
