package format

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/goatl/goatl-go/core"
)

// JSONFormatter renders records as one JSON object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &JSONFormatter{Config: cfg}
}

type jsonRecord struct {
	Time    string                 `json:"time"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Caller  string                 `json:"caller,omitempty"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Format renders a record as a JSON line
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	out := jsonRecord{
		Time:    rec.Time.Format(f.TimestampFormat),
		Level:   rec.Level.String(),
		Message: rec.Message,
	}

	if f.IncludeCaller && rec.Caller.Defined {
		out.Caller = rec.Caller.ShortFile + ":" + strconv.Itoa(rec.Caller.Line)
	}

	if len(rec.Fields) > 0 {
		out.Fields = make(map[string]interface{}, len(rec.Fields))
		for _, field := range rec.Fields {
			out.Fields[field.Key] = field.Value()
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
