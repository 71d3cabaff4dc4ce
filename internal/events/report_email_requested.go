package events

import "time"

const (
	ReportEmailRequestedTopic = "pmo.report.email.requested.v1"
	ReportEmailRequestedType  = "report_email_requested"
)

type ReportEmailRequestedEvent struct {
	EventType   string    `json:"event_type"`
	HistoryID   string    `json:"history_id"`
	ReportName  string    `json:"report_name"`
	Recipients  []string  `json:"recipients"`
	Cc          []string  `json:"cc,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	RequestedBy string    `json:"requested_by"`
	RequestID   string    `json:"request_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
