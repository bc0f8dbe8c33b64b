package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// DashboardResponse aggregates the administrative overview counters
type DashboardResponse struct {
	TotalStudents     int                     `json:"totalStudents"`
	ActiveStudents    int                     `json:"activeStudents"`
	TotalFees         float64                 `json:"totalFees"`
	HostelOccupancy   models.HostelOccupancy  `json:"hostelOccupancy"`
	BooksIssuedToday  int                     `json:"booksIssuedToday"`
	ExamPerformance   []models.SubjectAverage `json:"examPerformance"`
	PendingComplaints int                     `json:"pendingComplaints"`
}
