package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orozcop9/TailorMyResume-AI/internal/config"
	"github.com/orozcop9/TailorMyResume-AI/internal/extraction"
	"github.com/orozcop9/TailorMyResume-AI/internal/llm"
	"github.com/orozcop9/TailorMyResume-AI/internal/observability"
	"github.com/orozcop9/TailorMyResume-AI/internal/pipeline"
	"github.com/orozcop9/TailorMyResume-AI/internal/rewriting"
	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

var (
	optimizeResumePath string
	optimizeJobPath    string
	optimizeStrategy   string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume against a job description",
	Long:  `Run the optimization pipeline on a local PDF or DOCX resume and a job description text file, printing metrics and the rewritten resume.`,
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeResumePath, "resume", "", "Path to the resume file (.pdf or .docx)")
	optimizeCmd.Flags().StringVar(&optimizeJobPath, "job", "", "Path to the job description text file")
	optimizeCmd.Flags().StringVar(&optimizeStrategy, "strategy", "", "Rewrite strategy: rules or llm (overrides REWRITE_STRATEGY)")
	_ = optimizeCmd.MarkFlagRequired("resume")
	_ = optimizeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if optimizeStrategy != "" {
		cfg.RewriteStrategy = optimizeStrategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mediaType, ok := extraction.MediaTypeForPath(optimizeResumePath)
	if !ok {
		return fmt.Errorf("unsupported resume file type: %s (only .pdf and .docx are accepted)", optimizeResumePath)
	}

	resumeData, err := os.ReadFile(optimizeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if int64(len(resumeData)) > cfg.MaxUploadBytes {
		return fmt.Errorf("resume file exceeds the %d byte limit", cfg.MaxUploadBytes)
	}

	jobData, err := os.ReadFile(optimizeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobDescription := string(jobData)
	if len(jobDescription) == 0 {
		return fmt.Errorf("job description is empty")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var strategy rewriting.Strategy
	if cfg.RewriteStrategy == config.StrategyLLM {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		strategy = rewriting.NewLLMStrategy(client, cfg.LLMTimeout)
	} else {
		strategy = rewriting.NewRuleStrategy(nil, nil, nil)
	}

	raw := types.RawDocument{Data: resumeData, MediaType: mediaType}
	result, err := pipeline.New(strategy, nil, nil).Run(ctx, raw, jobDescription)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResult(result)
	return nil
}
