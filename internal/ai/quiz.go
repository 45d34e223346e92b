package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hirelogic/hirelogic-api/internal/llm"
	"github.com/hirelogic/hirelogic-api/internal/prompts"
)

// quizQuestionCount is how many questions every generated quiz contains.
const quizQuestionCount = 5

// QuizRequest describes the quiz to generate.
type QuizRequest struct {
	Topic      string `json:"topic" validate:"required,min=2"`
	SubTopic   string `json:"sub_topic,omitempty"`
	Difficulty string `json:"difficulty" validate:"required,oneof=Starting Medium Hard"`
}

// Validate validates the QuizRequest using the validator.
func (r *QuizRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// QuizQuestion is one multiple-choice question with the correct answer.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Quiz is a generated multiple-choice quiz.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuiz produces a five-question multiple-choice quiz on the topic.
// The output is validated against the quiz schema, and every answer must be
// one of its question's options.
func (f *Flows) GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz request: %w", err)
	}

	subTopicLine := ""
	if req.SubTopic != "" {
		subTopicLine = fmt.Sprintf("Sub-topic: %s\n", req.SubTopic)
	}
	prompt := prompts.Format(prompts.MustGet("flows.json", "generate-quiz"), map[string]string{
		"Topic":        req.Topic,
		"SubTopicLine": subTopicLine,
		"Difficulty":   req.Difficulty,
	})

	raw, err := f.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	quiz, err := parseQuiz(raw)
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

// parseQuiz validates and decodes a quiz JSON document.
func parseQuiz(raw string) (*Quiz, error) {
	if err := validateJSON(quizSchema, raw); err != nil {
		return nil, fmt.Errorf("quiz failed validation: %w", err)
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("failed to parse quiz: %w", err)
	}
	if len(quiz.Questions) != quizQuestionCount {
		return nil, fmt.Errorf("expected %d questions, got %d", quizQuestionCount, len(quiz.Questions))
	}

	for i, q := range quiz.Questions {
		found := false
		for _, opt := range q.Options {
			if opt == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("question %d: answer is not among the options", i+1)
		}
	}
	return &quiz, nil
}
