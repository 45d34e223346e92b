package ai

import (
	"fmt"

	"github.com/hirelogic/hirelogic-api/internal/schemas"
)

// Schemas for the structured flow outputs. Model output is validated against
// these before it is decoded, so a malformed response fails loudly instead of
// producing half-filled structs.

const resumeAnalysisSchema = `{
  "type": "object",
  "required": ["domains", "skills"],
  "properties": {
    "domains": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "confidence"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "confidence": {"type": "string", "enum": ["High", "Medium", "Low"]}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

const quizSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {
        "type": "object",
        "required": ["question", "options", "answer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string", "minLength": 1}
          },
          "answer": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

const homepageContentSchema = `{
  "type": "object",
  "required": ["headline", "subtext", "about_us_mission", "about_us_screening", "about_us_hiring"],
  "properties": {
    "headline": {"type": "string", "minLength": 1},
    "subtext": {"type": "string", "minLength": 1},
    "about_us_mission": {"type": "string", "minLength": 1},
    "about_us_screening": {"type": "string", "minLength": 1},
    "about_us_hiring": {"type": "string", "minLength": 1}
  }
}`

// validateJSON validates a JSON document against a schema and reports every
// failing field.
func validateJSON(schema, document string) error {
	if err := schemas.ValidateJSONString(schema, document); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}
