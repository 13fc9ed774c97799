package models

type Course struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"` // Beginner, Intermediate, Advanced
	Lessons     []Lesson `json:"lessons"`
}

type Lesson struct {
	ID       int    `json:"id"` // unique within its course
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Content  string `json:"content"`
}

// LessonIDs returns the ids of all lessons in course order.
func (c Course) LessonIDs() []int {
	ids := make([]int, len(c.Lessons))
	for i, l := range c.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// HasLesson reports whether the course contains a lesson with the given id.
func (c Course) HasLesson(id int) bool {
	for _, l := range c.Lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}
