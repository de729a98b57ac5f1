package responses

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type MonthRevenue struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int64  `json:"count"`
}

type AppointmentStats struct {
	StatusCounts []StatusCount `json:"statusCounts"`
	Monthly      []MonthBucket `json:"monthly"`
}

type PrescriptionStats struct {
	MonthlyRevenue []MonthRevenue   `json:"monthlyRevenue"`
	TopDiagnoses   []DiagnosisCount `json:"topDiagnoses"`
}
