package query

// Static word tables. Ported verbatim from the curated Korean keyword asset;
// update the data here, never the algorithms in normalizer.go / keywords.go.

// fillerSuffixes are trailing request phrases stripped before facet
// extraction. Longest entries first so compound phrases win.
var fillerSuffixes = []string{
	"추천해주세요",
	"추천해 줘",
	"추천해줘",
	"추천 해줘",
	"추천좀",
	"추천",
	"알려줘",
	"보여줘",
	"찾아줘",
	"찾아 줘",
}

// giftWords signal a buying-for-someone context.
var giftWords = []string{"선물", "선물용", "사주려고", "사주고", "사줄"}

// giftTargetsMale / giftTargetsFemale name the person the gift is for.
var giftTargetsMale = []string{"아빠", "아버지", "남자친구", "남친", "남편", "오빠", "형", "할아버지"}

var giftTargetsFemale = []string{"엄마", "어머니", "여자친구", "여친", "아내", "와이프", "누나", "언니", "할머니"}

// partnerMaleWords name a male romantic partner; without a gift context the
// speaker is inferred to be female (and vice versa).
var partnerMaleWords = []string{"남자친구", "남친", "남편", "신랑"}

var partnerFemaleWords = []string{"여자친구", "여친", "아내", "와이프"}

// directMaleWords / directFemaleWords are gender-coded nouns, celebrities and
// hairstyles that directly fix the target gender.
var directMaleWords = []string{"남자", "남성", "맨즈", "아저씨", "차은우", "포마드"}

var directFemaleWords = []string{"여자", "여성", "우먼", "아이유", "단발", "레이어드컷"}

// Season word lists. Flat precedence: winter, summer, spring/fall, all-season.
var winterWords = []string{"겨울", "한파", "추운", "추울", "방한"}

var summerWords = []string{"여름", "폭염", "더운", "더울", "무더위"}

var springFallWords = []string{"봄", "가을", "간절기", "환절기"}

var allSeasonWords = []string{"사계절"}

// embeddingExpansion rewrites a whole query into a richer phrase for the
// embedding provider. Checked in order, first matching key wins. This table
// only improves embedding quality; keyword extraction never sees it.
type embeddingExpansion struct {
	key      string
	expanded string
}

var embeddingExpansions = []embeddingExpansion{
	{"무스탕", "무스탕 자켓 스웨이드 양털 가죽"},
	{"청바지", "청바지 데님 진 pants"},
	{"데님", "데님 청바지 진 denim"},
	{"진", "진 청바지 데님 jeans"},
	{"후드", "후드 후드티 스웨트 hoodie"},
	{"트레이닝", "트레이닝 조거 팬츠 운동복"},
	{"조거", "조거 트레이닝 팬츠 운동복"},
	{"슬랙스", "슬랙스 정장 바지"},
	{"맨투맨", "맨투맨 스웨트 셔츠 티셔츠"},
}

// stopWords are tokens the keyword extractor drops outright.
var stopWords = map[string]struct{}{
	"그냥":  {},
	"좀":   {},
	"옷":   {},
	"스타일": {},
	"느낌":  {},
	"입을":  {},
	"입기":  {},
	"추천":  {},
	"해줘":  {},
}

// keywordPatterns maps a substring pattern to the category/style keywords it
// contributes. A token may trigger several patterns; the result is the union
// of every matching expansion list.
var keywordPatterns = map[string][]string{
	"청바지":  {"청바지", "데님", "진"},
	"데님":   {"데님", "청바지", "진"},
	"후드":   {"후드", "후드티", "스웨트"},
	"맨투맨":  {"맨투맨", "스웨트", "티셔츠"},
	"패딩":   {"패딩", "점퍼", "아우터"},
	"코트":   {"코트", "아우터"},
	"자켓":   {"자켓", "재킷", "아우터"},
	"무스탕":  {"무스탕", "자켓", "가죽"},
	"원피스":  {"원피스"},
	"스커트":  {"스커트", "치마"},
	"치마":   {"스커트", "치마"},
	"레깅스":  {"레깅스"},
	"반바지":  {"반바지", "쇼츠"},
	"슬랙스":  {"슬랙스", "정장", "바지"},
	"니트":   {"니트", "스웨터"},
	"셔츠":   {"셔츠", "남방"},
	"트레이닝": {"트레이닝", "조거", "운동복"},
	"조거":   {"조거", "트레이닝", "운동복"},
	"운동":   {"운동", "트레이닝", "스포츠"},
	"집":    {"집", "홈웨어", "편한", "휴식"},
	"방구석":  {"방구석", "집", "편한", "휴식"},
	"잠옷":   {"잠옷", "파자마", "수면", "홈웨어"},
	"파자마":  {"파자마", "잠옷", "수면"},
	"꿀잠":   {"잠", "잠옷", "수면"},
	"잘때":   {"잠", "잘때", "수면"},
	"수면":   {"수면", "잠옷", "파자마"},
	"빨간":   {"빨강", "레드"},
	"빨강":   {"빨강", "레드"},
	"레드":   {"레드", "빨강"},
	"검정":   {"검정", "블랙"},
	"검은":   {"검정", "블랙"},
	"블랙":   {"블랙", "검정"},
	"하얀":   {"화이트", "하양"},
	"화이트":  {"화이트", "하양"},
	"파란":   {"블루", "파랑"},
	"블루":   {"블루", "파랑"},
	"초록":   {"초록", "그린"},
	"그린":   {"그린", "초록"},
	"버건디":  {"버건디", "레드"},
}

// genderPatterns are ambiguous situational patterns whose expansion depends
// on the resolved gender. With no resolved gender both lists apply.
var genderPatterns = map[string]struct {
	male   []string
	female []string
}{
	"출근": {
		male:   []string{"셔츠", "슬랙스", "정장", "자켓"},
		female: []string{"블라우스", "슬랙스", "자켓", "스커트"},
	},
	"데이트": {
		male:   []string{"니트", "셔츠", "슬랙스"},
		female: []string{"원피스", "블라우스", "스커트"},
	},
	"하객": {
		male:   []string{"정장", "셔츠", "슬랙스"},
		female: []string{"원피스", "블라우스"},
	},
}
