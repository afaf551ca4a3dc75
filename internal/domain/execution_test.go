package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionResultSuccess(t *testing.T) {
	tests := []struct {
		name    string
		result  ExecutionResult
		success bool
	}{
		{"clean run", ExecutionResult{Stdout: "hi\n", ExitCode: 0}, true},
		{"non-zero exit with empty stderr", ExecutionResult{ExitCode: 1}, true},
		{"stderr output", ExecutionResult{Stderr: "Traceback ...", ExitCode: 1}, false},
		{"stderr with zero exit", ExecutionResult{Stdout: "hi\n", Stderr: "warning: x", ExitCode: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.success, tc.result.Success())
		})
	}
}

func TestNewSideReport(t *testing.T) {
	report := NewSideReport(ExecutionResult{
		Stdout:         "42\n",
		Stderr:         "",
		ElapsedSeconds: 1.25,
		ExitCode:       0,
	})

	assert.Equal(t, "42\n", report.Output)
	assert.Empty(t, report.Error)
	assert.InDelta(t, 1.25, report.Time, 1e-9)
	assert.True(t, report.Success)
}

func TestTranslationIsError(t *testing.T) {
	assert.True(t, Translation{CCode: "Error during translation: timeout"}.IsError())
	assert.True(t, Translation{CCode: "Error: No Python code provided."}.IsError())
	assert.False(t, Translation{CCode: "int main(void) { return 0; }"}.IsError())
}
