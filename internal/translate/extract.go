package translate

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ExtractJSON recovers a JSON object from an AI reply. Models asked for bare
// JSON still wrap it in markdown fences or prose often enough that three
// attempts are made in order: the whole content, the first fenced code block
// (leading "json" tag stripped), then everything between the first "{" and
// the last "}".
func ExtractJSON(content string, logger *slog.Logger) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(content)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), true
	}

	if strings.Contains(content, "```") {
		parts := strings.Split(content, "```")
		if len(parts) > 1 {
			block := strings.TrimSpace(strings.TrimPrefix(parts[1], "json"))
			if json.Valid([]byte(block)) {
				return json.RawMessage(block), true
			}
		}
	}

	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first != -1 && last > first {
		candidate := content[first : last+1]
		if json.Valid([]byte(candidate)) {
			logger.Warn("json fallback extraction used")
			return json.RawMessage(candidate), true
		}
	}

	return nil, false
}
