package evaluator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/prompt-trainer/backend/internal/models"
)

// CoerceResponse turns the untrusted text an external generator
// produced into a fully populated EvaluationResponse. Missing fields
// get defaults (label "ok", score 60, empty arrays); a field that is
// present but has an uncoercible shape fails the whole response — a
// partial outcome is never emitted.
func CoerceResponse(raw string) (models.EvaluationResponse, error) {
	var resp models.EvaluationResponse

	cleaned := stripCodeFences(raw)
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return resp, fmt.Errorf("parse generated JSON: %w", err)
	}

	label, err := coerceLabel(obj["label"])
	if err != nil {
		return resp, err
	}
	score, err := coerceScore(obj["score"])
	if err != nil {
		return resp, err
	}
	summary, err := coerceString(obj["summary"], "summary")
	if err != nil {
		return resp, err
	}
	subscores, err := coerceSubscores(obj["subscores"])
	if err != nil {
		return resp, err
	}
	feedback, err := coerceStrings(obj["feedback"], "feedback")
	if err != nil {
		return resp, err
	}
	suggestions, err := coerceSuggestions(obj["suggestions"])
	if err != nil {
		return resp, err
	}
	improved, err := coerceString(obj["improved_prompt"], "improved_prompt")
	if err != nil {
		return resp, err
	}

	return models.EvaluationResponse{
		Label:          label,
		Score:          score,
		Summary:        summary,
		Subscores:      subscores,
		Feedback:       feedback,
		Suggestions:    suggestions,
		ImprovedPrompt: improved,
	}, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func coerceLabel(v interface{}) (models.Label, error) {
	if v == nil {
		return models.LabelOK, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("label is not a string")
	}
	label := models.Label(strings.ToLower(strings.TrimSpace(s)))
	if !models.ValidLabels[label] {
		return "", fmt.Errorf("label %q is not good/ok/bad", s)
	}
	return label, nil
}

// coerceScore accepts JSON numbers and numeric strings, defaults the
// missing case to a mid-range 60, and clamps into 0-100.
func coerceScore(v interface{}) (int, error) {
	if v == nil {
		return 60, nil
	}
	var score int
	switch n := v.(type) {
	case float64:
		score = int(math.Round(n))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("score %q is not numeric", n)
		}
		score = parsed
	default:
		return 0, fmt.Errorf("score has unexpected type %T", v)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

func coerceString(v interface{}, field string) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string", field)
	}
	return s, nil
}

func coerceStrings(v interface{}, field string) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s is not an array", field)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not a string", field, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func coerceSubscores(v interface{}) ([]models.Subscore, error) {
	if v == nil {
		return []models.Subscore{}, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("subscores is not an array")
	}
	out := make([]models.Subscore, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("subscores[%d] is not an object", i)
		}
		name, ok := entry["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("subscores[%d] is missing a name", i)
		}
		rawScore, ok := entry["score"].(float64)
		if !ok {
			return nil, fmt.Errorf("subscores[%d] score is not numeric", i)
		}
		score := int(math.Round(rawScore))
		if score < 0 || score > 5 {
			return nil, fmt.Errorf("subscores[%d] score %d is out of range", i, score)
		}
		comment, err := coerceString(entry["comment"], "subscore comment")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Subscore{Name: name, Score: score, Comment: comment})
	}
	return out, nil
}

func coerceSuggestions(v interface{}) ([]models.Suggestion, error) {
	if v == nil {
		return []models.Suggestion{}, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("suggestions is not an array")
	}
	out := make([]models.Suggestion, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("suggestions[%d] is not an object", i)
		}
		title, ok := entry["title"].(string)
		if !ok {
			return nil, fmt.Errorf("suggestions[%d] is missing a title", i)
		}
		text, ok := entry["text"].(string)
		if !ok {
			return nil, fmt.Errorf("suggestions[%d] is missing text", i)
		}
		out = append(out, models.Suggestion{Title: title, Text: text})
	}
	return out, nil
}
