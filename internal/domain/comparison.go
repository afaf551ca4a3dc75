package domain

// SideReport is one half of a comparison: the execution outcome of a single
// language plus the derived success flag.
type SideReport struct {
	Output  string  `json:"output"`
	Error   string  `json:"error"`
	Time    float64 `json:"time"`
	Success bool    `json:"success"`
}

// Verdict is the derived comparison outcome. Speedup stays at 0.0 and Faster
// stays empty unless both sides succeeded with strictly positive times;
// consumers must not read a zero Speedup as a real ratio.
type Verdict struct {
	Faster         string  `json:"faster"`
	Speedup        float64 `json:"speedup"`
	BothSuccessful bool    `json:"both_successful"`
}

// ComparisonResult aggregates the Python and C execution outcomes with the
// performance verdict.
type ComparisonResult struct {
	Python     SideReport `json:"python"`
	C          SideReport `json:"c"`
	Comparison Verdict    `json:"comparison"`
}

func NewSideReport(res ExecutionResult) SideReport {
	return SideReport{
		Output:  res.Stdout,
		Error:   res.Stderr,
		Time:    res.ElapsedSeconds,
		Success: res.Success(),
	}
}
