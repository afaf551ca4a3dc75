package execute

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ IComparisonService = (*ComparisonService)(nil)

// ComparisonService runs a snippet through the interpreted executor and its
// translated counterpart through the compiled one, then derives the verdict.
type ComparisonService struct {
	python Executor
	c      Executor
	logger primary.Logger
}

func NewComparisonService(python, c Executor, logger primary.Logger) *ComparisonService {
	return &ComparisonService{
		python: python,
		c:      c,
		logger: logger,
	}
}

// Compare executes both sides independently, in a single pass, and fills in
// the verdict. Success on each side means empty stderr. The speedup ratio is
// only computed when both sides succeeded with strictly positive times; a
// tie goes to the compiled side.
func (s *ComparisonService) Compare(ctx context.Context, pythonCode, cCode string) *domain.ComparisonResult {
	pyRes := s.python.Execute(ctx, pythonCode)
	cRes := s.c.Execute(ctx, cCode)

	result := &domain.ComparisonResult{
		Python: domain.NewSideReport(pyRes),
		C:      domain.NewSideReport(cRes),
	}

	if !result.Python.Success || !result.C.Success {
		s.logger.Debug("Comparison not ranked, at least one side failed",
			"pythonSuccess", result.Python.Success,
			"cSuccess", result.C.Success)
		return result
	}

	result.Comparison.BothSuccessful = true
	if pyRes.ElapsedSeconds <= 0 || cRes.ElapsedSeconds <= 0 {
		return result
	}

	if pyRes.ElapsedSeconds < cRes.ElapsedSeconds {
		result.Comparison.Faster = s.python.Language()
		result.Comparison.Speedup = cRes.ElapsedSeconds / pyRes.ElapsedSeconds
	} else {
		result.Comparison.Faster = s.c.Language()
		result.Comparison.Speedup = pyRes.ElapsedSeconds / cRes.ElapsedSeconds
	}
	return result
}
