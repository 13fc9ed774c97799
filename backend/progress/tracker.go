// Package progress tracks per-user lesson completion and derives completion
// percentages from the catalog.
package progress

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"learnhub/backend/auth"
	"learnhub/backend/catalog"
	"learnhub/backend/models"
	"learnhub/backend/storage"
)

type Tracker struct {
	auth    *auth.Service
	catalog *catalog.Catalog
	store   storage.Store
}

func NewTracker(authSvc *auth.Service, cat *catalog.Catalog, store storage.Store) *Tracker {
	return &Tracker{auth: authSvc, catalog: cat, store: store}
}

// Progress returns the current user's record, creating an empty one on first
// touch. The second result is false only when nobody is logged in.
func (t *Tracker) Progress() (models.ProgressRecord, bool, error) {
	session, ok, err := t.auth.CurrentUser()
	if err != nil || !ok {
		return models.ProgressRecord{}, false, err
	}

	all, err := t.loadAll()
	if err != nil {
		return models.ProgressRecord{}, false, err
	}
	record, exists := all[session.UserID]
	if !exists {
		record = models.NewProgressRecord(time.Now().UTC())
		all[session.UserID] = record
		if err := t.saveAll(all); err != nil {
			return models.ProgressRecord{}, false, err
		}
	}
	return record, true, nil
}

// SaveProgress overwrites the current user's record with a fresh LastUpdated
// stamp. No-op when nobody is logged in.
func (t *Tracker) SaveProgress(record models.ProgressRecord) error {
	session, ok, err := t.auth.CurrentUser()
	if err != nil || !ok {
		return err
	}

	all, err := t.loadAll()
	if err != nil {
		return err
	}
	record.LastUpdated = time.Now().UTC()
	all[session.UserID] = record
	return t.saveAll(all)
}

// CourseProgress summarizes completion for one course. Unknown courses yield
// all zeros. Stored lesson ids that no longer exist in the course are ignored
// rather than trusted, so the summary can never exceed the lesson count.
func (t *Tracker) CourseProgress(courseID int) (models.CourseProgress, error) {
	course, ok := t.catalog.Course(courseID)
	if !ok {
		return models.CourseProgress{CompletedLessons: []int{}}, nil
	}

	result := models.CourseProgress{
		Total:            len(course.Lessons),
		CompletedLessons: []int{},
	}

	record, ok, err := t.Progress()
	if err != nil {
		return models.CourseProgress{CompletedLessons: []int{}}, err
	}
	if ok {
		for _, id := range record.Courses[courseID].CompletedLessons {
			if course.HasLesson(id) {
				result.CompletedLessons = append(result.CompletedLessons, id)
			}
		}
		result.Completed = len(result.CompletedLessons)
	}

	if result.Total > 0 {
		result.Percentage = int(math.Round(float64(result.Completed) / float64(result.Total) * 100))
	}
	return result, nil
}

// ToggleLesson flips the lesson's membership in the course's completed set.
// Applying it twice restores the original state. No-op when logged out.
func (t *Tracker) ToggleLesson(courseID, lessonID int) error {
	record, ok, err := t.Progress()
	if err != nil || !ok {
		return err
	}

	courseRecord := record.Courses[courseID]
	completed := courseRecord.CompletedLessons

	found := false
	for i, id := range completed {
		if id == lessonID {
			completed = append(completed[:i], completed[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		completed = append(completed, lessonID)
	}

	courseRecord.CompletedLessons = completed
	if record.Courses == nil {
		record.Courses = map[int]models.CourseRecord{}
	}
	record.Courses[courseID] = courseRecord
	return t.SaveProgress(record)
}

// MarkCourseComplete sets the completed set to every lesson id of the course.
// Idempotent; unknown courses and logged-out callers are no-ops.
func (t *Tracker) MarkCourseComplete(courseID int) error {
	course, ok := t.catalog.Course(courseID)
	if !ok {
		return nil
	}

	record, logged, err := t.Progress()
	if err != nil || !logged {
		return err
	}

	if record.Courses == nil {
		record.Courses = map[int]models.CourseRecord{}
	}
	record.Courses[courseID] = models.CourseRecord{CompletedLessons: course.LessonIDs()}
	return t.SaveProgress(record)
}

// Overview counts completed and in-progress courses across the catalog for
// the current user.
func (t *Tracker) Overview() (models.Overview, error) {
	courses := t.catalog.Courses()
	overview := models.Overview{TotalCourses: len(courses)}

	for _, course := range courses {
		cp, err := t.CourseProgress(course.ID)
		if err != nil {
			return models.Overview{}, err
		}
		switch {
		case cp.Percentage == 100:
			overview.CompletedCourses++
		case cp.Percentage > 0:
			overview.InProgressCourses++
		}
	}
	return overview, nil
}

func (t *Tracker) loadAll() (map[string]models.ProgressRecord, error) {
	all := map[string]models.ProgressRecord{}
	raw, ok, err := t.store.Get(storage.KeyProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &all); err != nil {
			return nil, fmt.Errorf("failed to decode progress: %w", err)
		}
	}
	return all, nil
}

func (t *Tracker) saveAll(all map[string]models.ProgressRecord) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := t.store.Set(storage.KeyProgress, raw); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
