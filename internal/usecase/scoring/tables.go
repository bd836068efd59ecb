package scoring

// Word tables for the symbolic scoring rules. Ported verbatim from the
// curated Korean keyword asset; treat as data.

// femaleCodedWords / maleCodedWords drop cross-gender items when a gender
// facet resolved. Checked against name and description.
var femaleCodedWords = []string{"여성", "여자", "우먼"}

var maleCodedWords = []string{"남성", "남자", "맨즈"}

// femaleGarments are garment categories excluded from male-targeted results.
// Checked against the name only.
var femaleGarments = []string{"원피스", "스커트", "블라우스", "레깅스", "브라탑", "크롭", "캐미솔", "슬립"}

// Season hard-filter words, checked against the name. The season field check
// is separate.
var summerOnlyWords = []string{"반팔", "쿨링", "린넨"}

var winterOnlyWords = []string{"기모", "패딩"}

// colorWords are the colors eligible for the color bonus.
var colorWords = []string{"빨강", "레드", "버건디", "초록", "그린", "블루", "검정", "화이트"}

// homeWords flag a stay-home query; outdoorWords are the materials and
// garments penalized under it.
var homeWords = []string{"집", "방구석", "편한", "휴식", "홈웨어"}

var outdoorWords = []string{
	"데님", "청바지", "레더", "가죽", "패딩", "코트", "자켓",
	"블레이저", "파카", "야상", "슬랙스", "정장", "부츠", "구두",
}

// sleepWords flag a sleepwear query. sleepBanWords knock an item out of the
// running; genuineSleepwearWords mark items that really are sleepwear.
var sleepWords = []string{"잠", "잘때", "수면", "파자마", "잠옷", "꿀잠", "자려"}

var sleepBanWords = []string{
	"레깅스", "타이즈", "컴프레션", "요가",
	"윈드브레이커", "아노락", "바람막이", "나일론",
	"스커트", "원피스",
	"후드", "모자",
	"청바지", "데님", "슬랙스", "셔츠", "자켓", "코트", "패딩",
	"맨투맨", "트레이닝",
}

var genuineSleepwearWords = []string{"잠옷", "파자마", "수면", "홈웨어"}
