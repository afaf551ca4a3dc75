package domain

import "strings"

// Translation is the outcome of a Python-to-C translation request.
//
// Failures travel inside CCode as an "Error during translation: ..." string
// rather than as a separate error value; callers render the text directly.
type Translation struct {
	CCode       string `json:"c_code"`
	Explanation string `json:"explanation,omitempty"`
	Cached      bool   `json:"cached,omitempty"`
}

func (t Translation) IsError() bool {
	return strings.HasPrefix(t.CCode, "Error")
}
