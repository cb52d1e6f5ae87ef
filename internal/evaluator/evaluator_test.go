package evaluator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prompt-trainer/backend/internal/config"
	"github.com/prompt-trainer/backend/internal/models"
	"github.com/prompt-trainer/backend/internal/scoring"
)

func testEngine() *scoring.Engine {
	return scoring.NewEngine(scoring.QuestionV2())
}

func ollamaEnvelope(t *testing.T, inner string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{"response": inner})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestEvaluate_DisabledRunsLocalPipeline(t *testing.T) {
	engine := testEngine()
	ev := New(engine, config.Evaluator{Enabled: false, Timeout: time.Second})

	got := ev.Evaluate(context.Background(), "How do I fix this?", "")
	want := engine.Evaluate("How do I fix this?", "")
	if !reflect.DeepEqual(got, want) {
		t.Error("disabled evaluator should match the local pipeline exactly")
	}
}

func TestEvaluate_ExternalSuccessIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		if req["format"] != "json" {
			t.Errorf("expected json format hint, got %v", req["format"])
		}
		w.Write(ollamaEnvelope(t, `{"label": "good", "score": 91, "summary": "Sharp.", "improved_prompt": "Keep it."}`))
	}))
	defer srv.Close()

	ev := NewWithClient(testEngine(), NewOllamaClient(srv.URL, "llama3.1"), time.Second)
	resp := ev.Evaluate(context.Background(), "How do I fix this?", "")

	if resp.Label != models.LabelGood || resp.Score != 91 {
		t.Errorf("expected the external verdict, got %+v", resp)
	}
	if resp.Subscores == nil || resp.Feedback == nil || resp.Suggestions == nil {
		t.Error("expected fully populated (empty, not nil) collections")
	}
}

func TestEvaluate_HTTPErrorFallsBackToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := testEngine()
	ev := NewWithClient(engine, NewOllamaClient(srv.URL, "llama3.1"), time.Second)

	got := ev.Evaluate(context.Background(), "How do I fix this?", "")
	want := engine.Evaluate("How do I fix this?", "")
	if !reflect.DeepEqual(got, want) {
		t.Error("expected fallback output identical to the local pipeline")
	}
}

func TestEvaluate_MalformedGenerationFallsBackToLocal(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"not json at all": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		},
		"empty response field": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": ""}`))
		},
		"inner text not json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": "the prompt is fine I guess"}`))
		},
		"schema mismatch": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": "{\"label\": \"amazing\", \"score\": 95}"}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			engine := testEngine()
			ev := NewWithClient(engine, NewOllamaClient(srv.URL, "llama3.1"), time.Second)

			got := ev.Evaluate(context.Background(), "What is Go?", "")
			want := engine.Evaluate("What is Go?", "")
			if !reflect.DeepEqual(got, want) {
				t.Error("expected fallback output identical to the local pipeline")
			}
		})
	}
}

func TestEvaluate_TimeoutFallsBackToLocal(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	engine := testEngine()
	ev := NewWithClient(engine, NewOllamaClient(srv.URL, "llama3.1"), 30*time.Millisecond)

	start := time.Now()
	got := ev.Evaluate(context.Background(), "What is Go?", "")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}

	want := engine.Evaluate("What is Go?", "")
	if !reflect.DeepEqual(got, want) {
		t.Error("expected fallback output identical to the local pipeline")
	}
}

func TestEvaluate_ExternalSeesRubricAndThresholds(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		prompt, _ = req["prompt"].(string)
		w.Write(ollamaEnvelope(t, `{"label": "ok"}`))
	}))
	defer srv.Close()

	ev := NewWithClient(testEngine(), NewOllamaClient(srv.URL, "llama3.1"), time.Second)
	ev.Evaluate(context.Background(), "Is this prompt fine?", "learn faster")

	for _, fragment := range []string{
		"expert evaluator of prompt engineering quality",
		"good (>=75), ok (45-74), bad (<45)",
		"Is this prompt fine?",
		"learn faster",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("instruction payload missing %q", fragment)
		}
	}
}
