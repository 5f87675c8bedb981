package llm

import (
	"encoding/json"
	"net/http"
)

// replyJSON answers every request with status and body encoded as JSON.
func replyJSON(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func anthropicMessage(text, stop string, in, out int) map[string]any {
	return map[string]any{
		"id":          "msg_fake",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": in, "output_tokens": out},
	}
}

func chatCompletion(text, finish string, in, out int) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-fake",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": text},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": in, "completion_tokens": out, "total_tokens": in + out},
	}
}

// verdictRequest asks for a structured diagnosis verdict.
func verdictRequest() Request {
	return Request{
		System:    "You are an ECG instructor.",
		Messages:  []Message{{Role: RoleUser, Content: "Rhythm: Sinus. Rate: 60-100."}},
		Schema:    verdictTestSchema(),
		MaxTokens: 256,
	}
}
