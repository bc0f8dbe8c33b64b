package models

import (
	"time"
)

// Exam defines an exam result record based on the 'exams' table
type Exam struct {
	ID         string    `json:"id" db:"id"`
	StudentID  string    `json:"studentId" db:"student_id"` // ID of the owning student record
	Subject    string    `json:"subject" db:"subject" example:"Mathematics"`
	Marks      int       `json:"marks" db:"marks" example:"85"`               // 0 <= Marks <= TotalMarks
	TotalMarks int       `json:"totalMarks" db:"total_marks" example:"100"`   // Defaults to 100
	Grade      string    `json:"grade" db:"grade" example:"A"`
	ExamDate   string    `json:"examDate" db:"exam_date" example:"2024-11-20"` // Date-only, YYYY-MM-DD
	ExamType   ExamType  `json:"examType" db:"exam_type" example:"midterm"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// SubjectAverage is one entry of the exam performance aggregate. Entries are
// ordered by first appearance of the subject so the output is deterministic.
type SubjectAverage struct {
	Subject string  `json:"subject" example:"Mathematics"`
	Average float64 `json:"average" example:"85"` // Mean of marks/totalMarks*100 over the subject's records
}
