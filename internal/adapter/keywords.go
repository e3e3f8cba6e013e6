package adapter

// koreanKeywords maps common Korean chat keywords onto the English keyword table.
var koreanKeywords = map[string]string{
	"별":    "star",
	"달":    "moon",
	"태양":   "sun",
	"해":    "sun",
	"바다":   "ocean",
	"사막":   "desert",
	"산":    "mountain",
	"꽃":    "flower",
	"정원":   "garden",
	"용감":   "brave",
	"용감한":  "brave",
	"지혜":   "wise",
	"현명한":  "wise",
	"아름다운": "beautiful",
	"친절":   "kind",
	"친절한":  "kind",
	"강한":   "strong",
	"평화":   "peaceful",
	"기쁨":   "joyful",
	"고귀한":  "noble",
	"흰색":   "white",
	"검정":   "black",
	"빨강":   "red",
	"파랑":   "blue",
	"초록":   "green",
	"황금":   "golden",
	"학자":   "scholar",
	"지도자":  "leader",
	"상인":   "merchant",
	"전사":   "warrior",
	"시인":   "poet",
	"의사":   "doctor",
	"진주":   "pearl",
	"다이아":  "diamond",
	"루비":   "ruby",
	"에메랄드": "emerald",
	"믿음":   "faith",
	"기도":   "prayer",
	"빛":    "light",
	"축복":   "blessing",
	"사자":   "lion",
	"매":    "falcon",
	"말":    "horse",
	"가젤":   "gazelle",
}
