package domain

// CompletedCourse is a course already passed in an earlier semester.
type CompletedCourse struct {
	Code     string   `json:"code" yaml:"code"`
	Title    string   `json:"title" yaml:"title"`
	Category Category `json:"category" yaml:"category"`
	Credits  float64  `json:"credits" yaml:"credits"`
	Grade    string   `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// CompletedSemester is one past semester's record.
type CompletedSemester struct {
	Number  int               `json:"number" yaml:"number"`
	Courses []CompletedCourse `json:"courses" yaml:"courses"`
}
