package llm

import (
	"Todak/internal/pkg/emotion"
	"fmt"
)

const snippetLength = 80

const (
	weeklyEmptyText    = "이번 주는 아직 기록이 부족해요. 당신의 작은 감정들도 소중하니 다음 주에는 꼭 들려주세요. 😊"
	weeklyFallbackText = "이번 주는 다양한 감정들이 함께했네요. 힘든 날도 있었지만, 행복한 순간들도 빛났던 한 주였습니다. 다음 주도 당신의 속도대로 나아가길 응원해요! 🌈"

	monthlyEmptyText    = "이번 달은 아직 기록이 충분하지 않아요. 하루하루 쌓이는 마음들이 당신을 더 단단하게 만들어줄 거예요. 🌙"
	monthlyFallbackText = "한 달 동안 정말 수고 많았어요. 다양한 감정의 파도 속에서도 자신을 잃지 않고 기록해준 당신이 멋져요. 다음 달도 당신의 색으로 가득 채워지길! ✨"
)

// EmpathyFallback 按主情绪选择固定文案
func EmpathyFallback(emotionIDs []string, content string) string {
	primary := ""
	if len(emotionIDs) > 0 {
		primary = emotionIDs[0]
	}
	label := emotion.Label(primary)

	quoted := ""
	if s := snippet(content, snippetLength); s != "" {
		quoted = `"` + s + `"`
	}
	subject := quoted
	if subject == "" {
		subject = "적어준"
	}

	switch primary {
	case emotion.Angry:
		return fmt.Sprintf("지금 %s로 마음이 뜨거운 것 같아. %s 라고 적어준 마음이 느껴져. 잠깐 숨 고르며 마음을 쉬어가보자.", label, quoted)
	case emotion.Worried:
		return fmt.Sprintf("%s 이야기를 읽으니 걱정이 많이 되는 하루였겠다. 내가 옆에서 살짝 어깨를 토닥여줄게.", subject)
	case emotion.Happy:
		return fmt.Sprintf("%s 순간들이 너를 미소 짓게 했구나. 그 따뜻함을 조금 더 오래 붙잡아보자. ✨", subject)
	case emotion.Sad:
		return fmt.Sprintf("%s 마음이 많이 무겁겠어. 조용히 옆에 앉아 있을게, 잠시라도 숨을 고르며 쉬어가자.", subject)
	case emotion.Anxious:
		return fmt.Sprintf("%s 생각들 때문에 마음이 조급했을 것 같아. 천천히 숨을 들이쉬고 내쉬면서 내가 옆에 있음을 느껴줘.", subject)
	}

	if quoted == "" {
		quoted = "적어준 일기"
	}
	feeling := ""
	if label != "" {
		feeling = fmt.Sprintf(" %s한 감정이 느껴졌어.", label)
	}
	return fmt.Sprintf("%s를 읽었어.%s 어떤 색이든 너의 마음을 존중해. 함께 천천히 풀어가보자. 🌿", quoted, feeling)
}

// MediaFallback 固定的推荐组合
func MediaFallback() MediaRecommendations {
	return MediaRecommendations{
		Music:    MediaItem{SearchQuery: "healing piano music", Title: "잔잔한 피아노 음악", Reason: "마음을 편안하게 해줄 거예요."},
		Video:    MediaItem{SearchQuery: "nature sounds relaxing", Title: "자연의 소리", Reason: "잠시 숲속으로 떠나보세요."},
		Activity: MediaItem{SearchQuery: "산책", Title: "10분 산책하기", Reason: "가볍게 걸으며 바람을 느끼면 마음이 조금 가벼워질 거예요."},
	}
}

// ReviewFallback hasRecords 为 false 时返回记录不足的文案
func ReviewFallback(periodType string, hasRecords bool) string {
	if periodType == PeriodMonthly {
		if hasRecords {
			return monthlyFallbackText
		}
		return monthlyEmptyText
	}
	if hasRecords {
		return weeklyFallbackText
	}
	return weeklyEmptyText
}
