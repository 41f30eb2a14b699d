package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/adforge/config"
	"github.com/spacesedan/adforge/internal/logging"
	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/scoring"
)

type scoreInput struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		inputPath    = flag.String("input", "-", "ad JSON file with headlines and descriptions arrays, - for stdin")
		keywordsFlag = flag.String("keywords", "", "comma-separated keywords for relevance scoring")
		businessType = flag.String("business-type", models.BusinessTypeGeneric, "benchmark domain (esoteric|generic)")
		benchmark    = flag.Bool("benchmark", true, "include industry benchmark comparison")
	)
	flag.Parse()

	var reader io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			slog.Error("[AdScorer] Failed to open input",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	}

	var input scoreInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		slog.Error("[AdScorer] Failed to decode ad JSON",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var keywords []string
	for _, kw := range strings.Split(*keywordsFlag, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	engine := scoring.NewEngine(*businessType)
	result := engine.Score(input.Headlines, input.Descriptions, keywords, *benchmark)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		slog.Error("[AdScorer] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
