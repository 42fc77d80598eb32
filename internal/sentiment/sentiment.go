// Package sentiment wraps the AWS Comprehend DetectSentiment call.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"github.com/oklog/ulid/v2"
)

// MaxTextBytes is the Comprehend limit for a single DetectSentiment document.
const MaxTextBytes = 5000

// Input errors.
var (
	ErrEmptyText           = errors.New("text is required")
	ErrInvalidUTF8         = errors.New("text is not valid UTF-8")
	ErrTextTooLong         = fmt.Errorf("text exceeds %d bytes", MaxTextBytes)
	ErrUnsupportedLanguage = errors.New("language is not supported for sentiment detection")
)

// Response errors.
var (
	ErrUnknownSentiment = errors.New("unknown sentiment label")
	ErrMissingScores    = errors.New("response has no sentiment scores")
	ErrScoreOutOfRange  = errors.New("sentiment score outside [0,1]")
)

// Label is the overall sentiment of a document.
type Label string

// Labels returned by Comprehend.
const (
	Positive Label = "POSITIVE"
	Negative Label = "NEGATIVE"
	Neutral  Label = "NEUTRAL"
	Mixed    Label = "MIXED"
)

// Valid reports whether l is one of the four known labels.
func (l Label) Valid() bool {
	switch l {
	case Positive, Negative, Neutral, Mixed:
		return true
	}
	return false
}

// supportedLanguages lists the codes DetectSentiment accepts.
var supportedLanguages = map[string]bool{
	"ar": true, "de": true, "en": true, "es": true, "fr": true, "hi": true,
	"it": true, "ja": true, "ko": true, "pt": true, "zh": true, "zh-TW": true,
}

// Scores holds the model confidence for each label.
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Mixed    float64 `json:"mixed"`
}

// Result is one completed analysis.
type Result struct {
	ID         string    `json:"id"`
	Language   string    `json:"language"`
	Sentiment  Label     `json:"sentiment"`
	Scores     Scores    `json:"scores"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// DetectSentimentAPI is the part of the Comprehend client used by Analyzer.
type DetectSentimentAPI interface {
	DetectSentiment(ctx context.Context, params *comprehend.DetectSentimentInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectSentimentOutput, error)
}

// Analyzer runs single-document sentiment detection.
type Analyzer struct {
	client DetectSentimentAPI
	now    func() time.Time
}

// NewAnalyzer creates an Analyzer backed by client.
func NewAnalyzer(client DetectSentimentAPI) *Analyzer {
	return &Analyzer{client: client, now: time.Now}
}

// NewFromRegion loads the default AWS credential chain and builds a
// Comprehend-backed Analyzer for region.
func NewFromRegion(ctx context.Context, region string) (*Analyzer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewAnalyzer(comprehend.NewFromConfig(cfg)), nil
}

// Validate checks text and language before any network call is made.
func Validate(text, language string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if len(text) > MaxTextBytes {
		return fmt.Errorf("%w: got %d", ErrTextTooLong, len(text))
	}
	if !supportedLanguages[language] {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return nil
}

// Analyze detects the sentiment of text. The call is made once; retries are
// whatever the SDK's default retryer does.
func (a *Analyzer) Analyze(ctx context.Context, text, language string) (*Result, error) {
	if err := Validate(text, language); err != nil {
		return nil, err
	}

	out, err := a.client.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCode(language),
	})
	if err != nil {
		return nil, fmt.Errorf("detect sentiment: %w", err)
	}

	label := Label(out.Sentiment)
	if !label.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSentiment, out.Sentiment)
	}

	scores, err := convertScores(out.SentimentScore)
	if err != nil {
		return nil, err
	}

	return &Result{
		ID:         ulid.Make().String(),
		Language:   language,
		Sentiment:  label,
		Scores:     scores,
		AnalyzedAt: a.now().UTC(),
	}, nil
}

func convertScores(s *types.SentimentScore) (Scores, error) {
	if s == nil {
		return Scores{}, ErrMissingScores
	}

	scores := Scores{
		Positive: float64(aws.ToFloat32(s.Positive)),
		Negative: float64(aws.ToFloat32(s.Negative)),
		Neutral:  float64(aws.ToFloat32(s.Neutral)),
		Mixed:    float64(aws.ToFloat32(s.Mixed)),
	}

	for name, v := range map[string]float64{
		"positive": scores.Positive,
		"negative": scores.Negative,
		"neutral":  scores.Neutral,
		"mixed":    scores.Mixed,
	} {
		if v < 0 || v > 1 {
			return Scores{}, fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, name, v)
		}
	}

	return scores, nil
}
