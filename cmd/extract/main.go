package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"finreport/pkg/core/agent"
	"finreport/pkg/core/extract"
	"finreport/pkg/core/pipeline"
	"finreport/pkg/core/prompt"
)

func main() {
	configPath := flag.String("config", "config/models.yaml", "provider config file")
	promptsDir := flag.String("prompts", "resources/prompts", "prompt override directory")
	outDir := flag.String("out", ".", "output directory")
	model := flag.String("model", "", "override the extraction model")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [flags] <report.html>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, using process environment")
	}

	agentCfg, err := agent.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("cannot load provider config", "err", err)
	}

	htmlContent, err := os.ReadFile(inputPath)
	if err != nil {
		logger.Fatal("cannot read input", "path", inputPath, "err", err)
	}

	cfg := extract.DefaultConfig()
	if *model != "" {
		cfg.Model = *model
	}
	for section, variants := range agentCfg.Keywords {
		cfg.Keywords[extract.SectionType(section)] = variants
	}
	prompts, err := prompt.LoadDirectory(*promptsDir)
	if err != nil {
		logger.Fatal("cannot load prompt overrides", "dir", *promptsDir, "err", err)
	}
	if prompts.Count() > 0 {
		logger.Info("prompt overrides loaded", "count", prompts.Count())
		cfg.Prompts = prompts
	}

	workflow := pipeline.NewWorkflow(cfg, agent.NewManager(agentCfg), logger)
	result, err := workflow.Run(context.Background(), string(htmlContent))
	if err != nil {
		logger.Fatal("run failed", "err", err)
	}

	if err := writeOutputs(*outDir, result); err != nil {
		logger.Fatal("cannot write outputs", "err", err)
	}
	logger.Info("outputs written", "dir", *outDir, "run_id", result.RunID)
}

func writeOutputs(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode extraction data: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "financial_data.json"), data, 0o644); err != nil {
		return err
	}

	val, err := json.MarshalIndent(result.Valuation, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode valuation: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "valuation.json"), val, 0o644); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "report.md"), []byte(result.ReportMarkdown), 0o644); err != nil {
		return err
	}
	if result.ReportHTML != "" {
		if err := os.WriteFile(filepath.Join(dir, "report.html"), []byte(result.ReportHTML), 0o644); err != nil {
			return err
		}
	}
	return nil
}
