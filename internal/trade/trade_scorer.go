package trade

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

// TextGenerator is the oracle capability: one prompt in, free text out.
// The Gemini client satisfies it in production; tests substitute fakes.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	defaultScore    = 50
	defaultGrade    = "Fair"
	defaultAnalysis = "Trade analysis completed."
)

// Scorer grades a trade by asking the generator and parsing its free-text
// reply. It never fails outward: any generation error yields a locally
// computed mock result.
type Scorer struct {
	gen    TextGenerator
	logger *logrus.Entry
}

func NewScorer(gen TextGenerator, logger *logrus.Entry) *Scorer {
	return &Scorer{gen: gen, logger: logger}
}

// Analyze scores the trade from the requesting team's perspective.
func (s *Scorer) Analyze(ctx context.Context, incoming, outgoing []string) Result {
	prompt := buildPrompt(incoming, outgoing)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).Warn("Oracle call failed, using mock analysis")
		return mockResult(incoming, outgoing)
	}

	return Result{
		Score:    extractScore(text),
		Grade:    extractGrade(text),
		Analysis: extractAnalysis(text),
	}
}

func buildPrompt(incoming, outgoing []string) string {
	var b strings.Builder

	b.WriteString("You are a fantasy football expert analyzing a trade from MY team's perspective. ")
	b.WriteString("Please provide a detailed analysis and score this trade on a scale of 0-100 based on whether this is good for MY team.\n\n")
	b.WriteString("TRADE DETAILS (From MY perspective):\n")
	fmt.Fprintf(&b, "I am GETTING: %s\n", strings.Join(incoming, ", "))
	fmt.Fprintf(&b, "I am GIVING UP: %s\n\n", strings.Join(outgoing, ", "))
	b.WriteString("Please analyze this trade considering:\n")
	b.WriteString("1. Am I getting good value for what I'm giving up?\n")
	b.WriteString("2. Player performance trends and recent form\n")
	b.WriteString("3. Positional needs and roster construction\n")
	b.WriteString("4. Injury history and risk factors\n")
	b.WriteString("5. Playoff schedule strength (weeks 15-17)\n")
	b.WriteString("6. Age, career trajectory, and long-term value\n")
	b.WriteString("7. Opportunity and target share in their current teams\n")
	b.WriteString("8. Overall trade value from MY team's perspective\n\n")
	b.WriteString("Scoring Guide:\n")
	b.WriteString("- 80-100: Excellent trade for me, clear win\n")
	b.WriteString("- 65-79: Good trade, favorable value\n")
	b.WriteString("- 50-64: Fair trade, roughly even value\n")
	b.WriteString("- 35-49: Poor trade, losing value\n")
	b.WriteString("- 0-34: Very poor trade, significant loss\n\n")
	b.WriteString("Provide your response in the following format:\n")
	b.WriteString("SCORE: [0-100 integer score]\n")
	b.WriteString("GRADE: [Excellent/Good/Fair/Poor/Very Poor]\n")
	b.WriteString("ANALYSIS: [Detailed 3-4 sentence analysis explaining why this trade is good/bad for MY team, focusing on the value I'm getting vs giving up]\n\n")
	b.WriteString("Focus entirely on whether this trade helps MY team win.\n")

	return b.String()
}

// extractScore pulls the first run of digits after the colon on the first
// SCORE: line. Missing or unparseable scores default to 50.
func extractScore(text string) int {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToUpper(line), "SCORE:") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			return defaultScore
		}

		score := 0
		seen := false
		for _, r := range parts[1] {
			if r >= '0' && r <= '9' {
				score = score*10 + int(r-'0')
				seen = true
			} else if seen {
				break
			}
		}
		if !seen {
			return defaultScore
		}
		return score
	}
	return defaultScore
}

// extractGrade returns the text after the colon on the first GRADE: line,
// verbatim apart from surrounding whitespace.
func extractGrade(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToUpper(line), "GRADE:") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			return defaultGrade
		}
		if grade := strings.TrimSpace(parts[1]); grade != "" {
			return grade
		}
		return defaultGrade
	}
	return defaultGrade
}

// extractAnalysis collects the remainder of the ANALYSIS: line plus all
// subsequent non-blank lines, joined with spaces.
func extractAnalysis(text string) string {
	var lines []string
	started := false
	for _, line := range strings.Split(text, "\n") {
		if !started {
			if strings.Contains(strings.ToUpper(line), "ANALYSIS:") {
				started = true
				if parts := strings.SplitN(line, ":", 2); len(parts) == 2 {
					if rest := strings.TrimSpace(parts[1]); rest != "" {
						lines = append(lines, rest)
					}
				}
			}
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) == 0 {
		return defaultAnalysis
	}
	return strings.Join(lines, " ")
}

// mockResult produces a plausible grade when the oracle is unreachable.
// The score leans slightly toward trades that bring in more players than
// they send out, with a random wobble, clamped to [10,90].
func mockResult(incoming, outgoing []string) Result {
	modifier := rand.Intn(41) - 20 // uniform in [-20,20]
	score := defaultScore + modifier + 3*len(incoming) - 2*len(outgoing)
	if score < 10 {
		score = 10
	}
	if score > 90 {
		score = 90
	}

	grade := GradeForScore(score)

	value := "poor"
	switch {
	case score >= 60:
		value = "favorable"
	case score >= 40:
		value = "questionable"
	}

	analysis := fmt.Sprintf(
		"Mock analysis from your team's perspective: This trade shows %s value. You're getting %d player(s) and giving up %d player(s). The value exchange appears %s for your team.",
		strings.ToLower(grade), len(incoming), len(outgoing), value,
	)

	return Result{Score: score, Grade: grade, Analysis: analysis}
}

// GradeForScore maps a numeric score onto the five-level grade scale.
func GradeForScore(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Fair"
	case score >= 35:
		return "Poor"
	default:
		return "Very Poor"
	}
}
