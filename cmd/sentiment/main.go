// Command sentiment runs one AWS Comprehend sentiment analysis and prints the result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hello-ecr/hello-ecr/internal/sentiment"
)

const defaultText = "This product is absolutely amazing! I love it."

type output struct {
	*sentiment.Result
	Text string `json:"text"`
}

func main() {
	var (
		text     = flag.String("text", defaultText, "Text to analyze (max 5000 bytes)")
		language = flag.String("language", "en", "Comprehend language code")
		region   = flag.String("region", envOr("AWS_REGION", "eu-west-1"), "AWS region")
		format   = flag.String("format", "plain", "Output format: plain or json")
		timeout  = flag.Duration("timeout", 30*time.Second, "Overall request timeout")
	)
	flag.Parse()

	if *format != "plain" && *format != "json" {
		fmt.Fprintln(os.Stderr, "format must be plain or json")
		os.Exit(2)
	}

	if err := sentiment.Validate(*text, *language); err != nil {
		fmt.Fprintln(os.Stderr, "invalid input:", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	analyzer, err := sentiment.NewFromRegion(ctx, *region)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	result, err := analyzer.Analyze(ctx, *text, *language)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := writeResult(os.Stdout, *format, *text, result); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}
}

func writeResult(w io.Writer, format, text string, result *sentiment.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output{Result: result, Text: text})
	}

	_, err := fmt.Fprintf(w,
		"Sentiment: %s\nSentiment Scores: Positive=%.4f Negative=%.4f Neutral=%.4f Mixed=%.4f\n",
		result.Sentiment,
		result.Scores.Positive,
		result.Scores.Negative,
		result.Scores.Neutral,
		result.Scores.Mixed,
	)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
