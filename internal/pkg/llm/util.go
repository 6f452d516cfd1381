package llm

import (
	"embed"
	log "log/slog"
	"strings"
	"unicode/utf8"
)

//go:embed prompts/*.txt
var promptFS embed.FS

var (
	empathyPrompt       = readPrompt("prompts/empathy.txt")
	mediaPrompt         = readPrompt("prompts/media.txt")
	weeklyReviewPrompt  = readPrompt("prompts/weekly_review.txt")
	monthlyReviewPrompt = readPrompt("prompts/monthly_review.txt")
)

func readPrompt(file string) string {
	data, err := promptFS.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// cleanJSON 去掉模型常见的 ``` 代码块包裹
func cleanJSON(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// snippet 按字符截断，超出时追加省略号
func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "…"
}
