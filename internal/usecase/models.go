package usecase

// HealthStatus — состояние выбранного хранилища.
type HealthStatus struct {
	Storage  string `json:"storage"`
	Fallback bool   `json:"fallback"`
	Status   string `json:"status"`
}

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
