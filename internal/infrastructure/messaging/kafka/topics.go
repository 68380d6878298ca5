// Package kafka publishes assessment lifecycle events for downstream
// consumers (alerting, aggregation, model retraining).
package kafka

import (
	"encoding/json"
	"time"
)

// Topic constants.  Producers prepend the configured topic prefix.
const (
	TopicAnalysisCompleted = "analysis.completed"
	TopicAnalysisFailed    = "analysis.failed"
)

// EventEnvelope standardizes event messages.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// AnalysisCompletedPayload is emitted after a document assessment is stored.
type AnalysisCompletedPayload struct {
	AssessmentID string    `json:"assessment_id"`
	URL          string    `json:"url"`
	Score        int       `json:"score"`
	RiskLevel    string    `json:"risk_level"`
	Language     string    `json:"language"`
	ClauseCount  int       `json:"clause_count"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

// AnalysisFailedPayload is emitted when the pipeline rejects a document.
type AnalysisFailedPayload struct {
	URL      string    `json:"url"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	FailedAt time.Time `json:"failed_at"`
}

//Personal.AI order the ending
