package emotion

// Emotion 固定情绪调色板中的一项
type Emotion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

const (
	Angry      = "angry"
	Worried    = "worried"
	Happy      = "happy"
	Calm       = "calm"
	Anxious    = "anxious"
	Sad        = "sad"
	Surprised  = "surprised"
	Proud      = "proud"
	Unpleasant = "unpleasant"
	Shy        = "shy"
	Regret     = "regret"
	Depressed  = "depressed"
)

// MaxPerRecord 一条记录最多选择的情绪数
const MaxPerRecord = 3

// DefaultColor 无记录时图表使用的颜色
const DefaultColor = "#F3F4F6"

var catalog = []Emotion{
	{ID: Angry, Label: "분노", Emoji: "💢", Color: "#FFAFA3"},
	{ID: Worried, Label: "걱정", Emoji: "💭", Color: "#FFCCBC"},
	{ID: Happy, Label: "행복", Emoji: "💛", Color: "#FFF59D"},
	{ID: Calm, Label: "평온", Emoji: "🌿", Color: "#C5E1A5"},
	{ID: Anxious, Label: "불안", Emoji: "🌪️", Color: "#80DEEA"},
	{ID: Sad, Label: "슬픔", Emoji: "💧", Color: "#90CAF9"},
	{ID: Surprised, Label: "놀람", Emoji: "💥", Color: "#CE93D8"},
	{ID: Proud, Label: "뿌듯", Emoji: "🌟", Color: "#FFCC80"},
	{ID: Unpleasant, Label: "불쾌", Emoji: "🌩️", Color: "#A5D6A7"},
	{ID: Shy, Label: "부끄", Emoji: "🌸", Color: "#F48FB1"},
	{ID: Regret, Label: "후회", Emoji: "🕳️", Color: "#BCAAA4"},
	{ID: Depressed, Label: "우울", Emoji: "🖤", Color: "#B0BEC5"},
}

var byID = func() map[string]Emotion {
	m := make(map[string]Emotion, len(catalog))
	for _, e := range catalog {
		m[e.ID] = e
	}
	return m
}()

// All 返回目录副本，顺序固定
func All() []Emotion {
	out := make([]Emotion, len(catalog))
	copy(out, catalog)
	return out
}

func Get(id string) (Emotion, bool) {
	e, ok := byID[id]
	return e, ok
}

func Valid(id string) bool {
	_, ok := byID[id]
	return ok
}

// Label 未知 id 原样返回
func Label(id string) string {
	if e, ok := byID[id]; ok {
		return e.Label
	}
	return id
}

func Labels(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, Label(id))
	}
	return out
}

func Color(id string) string {
	if e, ok := byID[id]; ok {
		return e.Color
	}
	return DefaultColor
}
