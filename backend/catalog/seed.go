package catalog

import "learnhub/backend/models"

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:          1,
			Title:       "Introduction to Web Development",
			Description: "Learn the fundamentals of HTML, CSS, and JavaScript to build modern websites from scratch.",
			Icon:        "🌐",
			Duration:    "8 weeks",
			Level:       "Beginner",
			Lessons: []models.Lesson{
				{ID: 1, Title: "Introduction to HTML", Duration: "45 min", Content: "Learn the basic structure of HTML documents and common HTML tags."},
				{ID: 2, Title: "CSS Fundamentals", Duration: "60 min", Content: "Understand how to style web pages using CSS selectors and properties."},
				{ID: 3, Title: "JavaScript Basics", Duration: "90 min", Content: "Get started with JavaScript programming language and DOM manipulation."},
				{ID: 4, Title: "Responsive Design", Duration: "75 min", Content: "Create responsive layouts that work on all devices using modern CSS techniques."},
				{ID: 5, Title: "Building Your First Website", Duration: "120 min", Content: "Put everything together and build a complete website from scratch."},
			},
		},
		{
			ID:          2,
			Title:       "Python Programming Masterclass",
			Description: "Master Python programming from beginner to advanced concepts including data structures and algorithms.",
			Icon:        "🐍",
			Duration:    "12 weeks",
			Level:       "Intermediate",
			Lessons: []models.Lesson{
				{ID: 1, Title: "Python Basics and Syntax", Duration: "60 min", Content: "Learn Python syntax, variables, data types, and basic operations."},
				{ID: 2, Title: "Control Flow and Functions", Duration: "75 min", Content: "Master if statements, loops, and how to write reusable functions."},
				{ID: 3, Title: "Data Structures", Duration: "90 min", Content: "Understand lists, tuples, dictionaries, and sets in Python."},
				{ID: 4, Title: "Object-Oriented Programming", Duration: "120 min", Content: "Learn classes, objects, inheritance, and polymorphism."},
				{ID: 5, Title: "File Handling and Modules", Duration: "60 min", Content: "Work with files and learn to import and use Python modules."},
				{ID: 6, Title: "Final Project", Duration: "180 min", Content: "Build a complete Python application using everything you've learned."},
			},
		},
		{
			ID:          3,
			Title:       "Data Science Fundamentals",
			Description: "Explore data analysis, visualization, and machine learning basics using Python and popular libraries.",
			Icon:        "📊",
			Duration:    "10 weeks",
			Level:       "Intermediate",
			Lessons: []models.Lesson{
				{ID: 1, Title: "Introduction to Data Science", Duration: "45 min", Content: "Understand what data science is and its applications in various industries."},
				{ID: 2, Title: "NumPy for Data Analysis", Duration: "90 min", Content: "Learn to work with arrays and perform numerical computations."},
				{ID: 3, Title: "Pandas for Data Manipulation", Duration: "120 min", Content: "Master data manipulation and analysis using Pandas DataFrames."},
				{ID: 4, Title: "Data Visualization with Matplotlib", Duration: "75 min", Content: "Create beautiful and informative visualizations of your data."},
				{ID: 5, Title: "Introduction to Machine Learning", Duration: "90 min", Content: "Learn the basics of machine learning and build your first model."},
			},
		},
		{
			ID:          4,
			Title:       "UI/UX Design Principles",
			Description: "Learn how to create beautiful, user-friendly interfaces and enhance user experience in digital products.",
			Icon:        "🎨",
			Duration:    "6 weeks",
			Level:       "Beginner",
			Lessons: []models.Lesson{
				{ID: 1, Title: "Introduction to UI/UX", Duration: "40 min", Content: "Understand the difference between UI and UX and why both matter."},
				{ID: 2, Title: "Design Thinking Process", Duration: "60 min", Content: "Learn the design thinking methodology for solving user problems."},
				{ID: 3, Title: "Color Theory and Typography", Duration: "75 min", Content: "Master the principles of color and typography in design."},
				{ID: 4, Title: "Wireframing and Prototyping", Duration: "90 min", Content: "Create wireframes and interactive prototypes for your designs."},
				{ID: 5, Title: "User Research and Testing", Duration: "60 min", Content: "Learn how to conduct user research and usability testing."},
				{ID: 6, Title: "Design Portfolio Project", Duration: "120 min", Content: "Build a complete UI/UX project for your portfolio."},
			},
		},
	}
}
