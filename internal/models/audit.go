package models

// AuditLog records a successful mutation.
type AuditLog struct {
	Meta
	ActorID    string `json:"actorId,omitempty"`
	ActorRole  Role   `json:"actorRole,omitempty"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resourceId,omitempty"`
	Status     int    `json:"status"`
	IPAddress  string `json:"ipAddress"`
	UserAgent  string `json:"userAgent"`
	RequestID  string `json:"requestId,omitempty"`
	LatencyMs  int64  `json:"latencyMs"`
}
