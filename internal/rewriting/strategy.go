// Package rewriting transforms resume text to better align with a job
// description. Two interchangeable strategies implement the same
// contract: a deterministic rule-based rewriter and delegation to an
// external text-completion service.
package rewriting

import "context"

// Strategy rewrites a full resume against a job description. The
// scoring and reporting stages are agnostic to which strategy produced
// the optimized text.
type Strategy interface {
	Optimize(ctx context.Context, original, jobDescription string) (string, error)
}
