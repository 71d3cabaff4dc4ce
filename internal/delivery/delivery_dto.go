package delivery

type SendReportEmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,max=20,dive,email"`
	Cc         []string `json:"cc" binding:"omitempty,max=20,dive,email"`
	Subject    string   `json:"subject" binding:"max=200"`
	Body       string   `json:"body" binding:"max=5000"`
}

type SendReportEmailResponse struct {
	HistoryID string `json:"historyId"`
	OutboxID  string `json:"outboxId"`
	Queued    bool   `json:"queued"`
}
