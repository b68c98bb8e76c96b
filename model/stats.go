package model

import "time"

// DashboardStats is role dependent: patient fields and doctor fields are
// mutually exclusive, omitted when not applicable.
type DashboardStats struct {
	TotalRecords   int64      `json:"total_records"`
	UniqueDoctors  *int64     `json:"unique_doctors,omitempty"`
	VisibleRecords *int64     `json:"visible_records,omitempty"`
	HiddenRecords  *int64     `json:"hidden_records,omitempty"`
	LastVisit      *time.Time `json:"last_visit,omitempty"`
	UniquePatients *int64     `json:"unique_patients,omitempty"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
}
