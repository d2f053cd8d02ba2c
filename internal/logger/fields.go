package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRunID tags every log line of one CLI invocation.
	FieldRunID = "run_id"
	// FieldSource names the request file or input an evaluation came from.
	FieldSource = "source"

	FieldDecision        = "decision"
	FieldScore           = "score"
	FieldPrimaryFunction = "primary_function"
	FieldAlignmentLevel  = "alignment_level"
)

// PreviewLength is how much of profile and job text debug logs show.
const PreviewLength = 120

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// Evaluation summarises a finished evaluation for logging.
type Evaluation struct {
	Decision        string
	Score           int
	PrimaryFunction string
	AlignmentLevel  string
}

// EvaluationFields returns the standard field set logged for each evaluation.
func EvaluationFields(e Evaluation) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldDecision, Value: e.Decision},
		StringField{Key: FieldPrimaryFunction, Value: e.PrimaryFunction},
		StringField{Key: FieldAlignmentLevel, Value: e.AlignmentLevel},
	)
	return append(fields, zap.Int(FieldScore, e.Score))
}

// WithRunID attaches the invocation id to the logger.
func WithRunID(logger *zap.Logger, runID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldRunID, Value: runID})...)
}

// PreviewFields returns truncated previews of the input texts.
func PreviewFields(profileText, jobText string) []zap.Field {
	return StringFields(
		StringField{Key: "profile_preview", Value: TruncateForLog(profileText, PreviewLength)},
		StringField{Key: "job_preview", Value: TruncateForLog(jobText, PreviewLength)},
	)
}
