package domain

// BuildReportMeta contains metadata about a batch build run
type BuildReportMeta struct {
	Requests        int     `json:"requests"`
	Cases           int     `json:"cases"`
	Diagnostics     int     `json:"diagnostics"`
	Errors          int     `json:"errors"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// BuildEntry flattens one built test for the report
type BuildEntry struct {
	Class                     string       `json:"class"`
	Method                    string       `json:"method"`
	Kind                      string       `json:"kind,omitempty"`
	Name                      string       `json:"name,omitempty"`
	DataKey                   string       `json:"data_key,omitempty"`
	Groups                    []string     `json:"groups,omitempty"`
	Message                   string       `json:"message,omitempty"`
	Error                     string       `json:"error,omitempty"`
	RunTestInSeparateProcess  bool         `json:"run_test_in_separate_process,omitempty"`
	RunClassInSeparateProcess bool         `json:"run_class_in_separate_process,omitempty"`
	Children                  []BuildEntry `json:"children,omitempty"`
}

// BuildReport is the complete output structure for a batch build
type BuildReport struct {
	Meta    BuildReportMeta `json:"meta"`
	Entries []BuildEntry    `json:"entries"`
}
