package namedata

// builtinTables returns a fresh copy of the curated name tables shipped with the bot.
func builtinTables() Tables {
	return Tables{
		MaleNames: []string{
			"Abdul", "Abu", "Ahmad", "Ali", "Hassan", "Hussein", "Ibrahim", "Khalil",
			"Mohammed", "Omar", "Rashid", "Said", "Tariq", "Yusuf", "Zaid", "Jamal",
		},
		FemaleNames: []string{
			"Aisha", "Amina", "Fatima", "Khadija", "Layla", "Maryam", "Nadia", "Safiya",
			"Zara", "Yasmin", "Lina", "Dina", "Rana", "Hala", "Rima", "Soraya",
		},
		Keywords: map[string][]string{
			// 자연/우주
			"star":     {"Najm", "Kawkab", "Thuraya", "Nujum"},
			"moon":     {"Qamar", "Hilal", "Badr", "Kamira"},
			"sun":      {"Shams", "Diya", "Nour", "Bahir", "Munir", "Siraj"},
			"ocean":    {"Bahr", "Yamm", "Lujain", "Safina", "Mawj", "Ghaith"},
			"desert":   {"Sahra", "Raml", "Badiya", "Sahir", "Qafila", "Barr"},
			"mountain": {"Jabal", "Sakhir", "Qasim", "Tall", "Hadi", "Ras"},
			"flower":   {"Ward", "Yasmin", "Narjis", "Zahra", "Rihan", "Rayhan"},
			"garden":   {"Bustan", "Hadiqah", "Firdaus", "Riyad", "Jannah", "Rawda"},

			// 성격/감정
			"brave":     {"Shuja", "Qawi", "Jasur", "Battal", "Hamza", "Usama"},
			"wise":      {"Hakim", "Rashid", "Alim", "Najib", "Fahim", "Akil"},
			"beautiful": {"Jamil", "Husn", "Zain", "Hilwa", "Bahir"},
			"kind":      {"Karim", "Rahman", "Halim", "Latif", "Rauf", "Sabur"},
			"strong":    {"Qawi", "Aziz", "Shahir", "Qadur", "Jalil", "Majid"},
			"peaceful":  {"Salim", "Amin", "Sakina", "Salam", "Rahma", "Wadud"},
			"joyful":    {"Farah", "Surur", "Bashir", "Masrur", "Farhan", "Mubashir"},
			"noble":     {"Sharif", "Najib", "Asil", "Karim", "Muhtaram", "Sayyid"},

			// 색깔
			"white":  {"Abyad", "Safiya", "Bayda", "Naqi", "Zahir", "Barid"},
			"black":  {"Aswad", "Layla", "Ghazal", "Habashi", "Sudan", "Kahla"},
			"red":    {"Ahmar", "Ward", "Sumaq", "Hamra", "Aqiq", "Marjan"},
			"blue":   {"Azraq", "Sama", "Lujain", "Zarqa", "Firouz", "Bahr"},
			"green":  {"Akhdar", "Zaytun", "Khadir", "Rayhan", "Hadra"},
			"golden": {"Dhahabi", "Tibr", "Zahab", "Nurani", "Asil", "Qirat"},

			// 직업/지위
			"scholar":  {"Alim", "Faqih", "Qari", "Hafiz", "Ustaz", "Shaykh"},
			"leader":   {"Amir", "Malik", "Sultan", "Qaid", "Zaim", "Mudir"},
			"merchant": {"Tajir", "Baya", "Ghaniy", "Muyassar", "Kasib"},
			"warrior":  {"Muhajir", "Ghazi", "Faris", "Mujahid", "Battal", "Hamza"},
			"poet":     {"Shair", "Adib", "Balaghiy", "Fasih", "Qalam", "Nazim"},
			"doctor":   {"Tabib", "Hakim", "Shafi", "Dawa", "Ilaj", "Seha"},

			// 보석
			"pearl":   {"Lulu", "Durra", "Jawhar", "Marjan"},
			"diamond": {"Almas", "Jawhar", "Bariq", "Lama", "Sana", "Zahir"},
			"ruby":    {"Yakut", "Ahmar", "Marjan", "Aqiq", "Sumaq", "Hamra"},
			"emerald": {"Zumrud", "Akhdar", "Zabarjad", "Zaytuni", "Khadir", "Sabz"},

			// 종교/영성
			"faith":    {"Iman", "Din", "Taqwa", "Yaqin", "Salah", "Hidaya"},
			"prayer":   {"Salah", "Dua", "Dhikr", "Tasbih", "Wird", "Munajat"},
			"light":    {"Nour", "Diya", "Siraj", "Munir", "Bahir", "Ishraq"},
			"blessing": {"Baraka", "Nima", "Fadl", "Khayr", "Rahma", "Lutf"},

			// 동물
			"lion":    {"Asad", "Layth", "Hayder", "Ghada", "Usama", "Hamza"},
			"falcon":  {"Saqr", "Shahin", "Baz", "Tair", "Sarim"},
			"horse":   {"Faras", "Jawad", "Hisan", "Asil"},
			"gazelle": {"Ghazal", "Reem", "Mahir", "Rana", "Sawsan"},
		},
		Transliterations: map[string]string{
			"Abdul": "압둘", "Abu": "아부", "Ahmad": "아흐마드", "Ali": "알리",
			"Hassan": "하산", "Hussein": "후세인", "Ibrahim": "이브라힘", "Khalil": "칼릴",
			"Mohammed": "무함마드", "Omar": "오마르", "Rashid": "라시드", "Said": "사이드",
			"Tariq": "타리크", "Yusuf": "유수프", "Zaid": "자이드", "Jamal": "자말",

			"Aisha": "아이샤", "Amina": "아미나", "Fatima": "파티마", "Khadija": "카디자",
			"Layla": "라일라", "Maryam": "마리얌", "Nadia": "나디아", "Safiya": "사피야",
			"Zara": "자라", "Yasmin": "야스민", "Lina": "리나", "Dina": "디나",
			"Rana": "라나", "Hala": "할라", "Rima": "리마", "Soraya": "소라야",

			"Najm": "나즘", "Kawkab": "카우카브", "Thuraya": "투라야", "Shams": "샴스",
			"Qamar": "카마르", "Nujum": "누줌", "Hilal": "힐랄", "Badr": "바드르",
			"Luna": "루나", "Kamira": "카미라", "Qamra": "카므라", "Diya": "디야",
			"Nour": "누르", "Bahir": "바히르", "Munir": "무니르", "Siraj": "시라즈",
			"Bahr": "바흐르", "Yamm": "얌", "Lujain": "루자인", "Safina": "사피나",
			"Mawj": "마우즈", "Ghaith": "가이스", "Sahra": "사흐라", "Raml": "람르",
			"Badiya": "바디야", "Sahir": "사히르", "Qafila": "카필라", "Barr": "바르",
			"Jabal": "자발", "Sakhir": "사키르", "Qasim": "카심", "Tall": "탈르",
			"Hadi": "하디", "Ras": "라스", "Ward": "와르드", "Narjis": "나르지스",
			"Zahra": "자흐라", "Rihan": "리한", "Rayhan": "라이한", "Bustan": "부스탄",
			"Hadiqah": "하디카", "Firdaus": "피르다우스", "Riyad": "리야드", "Jannah": "잔나",
			"Rawda": "라우다",

			"Shuja": "슈자", "Qawi": "카위", "Jasur": "자수르", "Battal": "바탈",
			"Hamza": "함자", "Usama": "우사마", "Hakim": "하킴", "Alim": "알림",
			"Najib": "나지브", "Fahim": "파힘", "Akil": "아킬", "Jamil": "자밀",
			"Husn": "후슨", "Zain": "자인", "Hilwa": "힐와", "Karim": "카림",
			"Rahman": "라흐만", "Halim": "할림", "Latif": "라티프", "Rauf": "라우프",
			"Sabur": "사부르", "Aziz": "아지즈", "Shahir": "샤히르", "Qadur": "카두르",
			"Jalil": "자릴", "Majid": "마지드", "Salim": "살림", "Amin": "아민",
			"Sakina": "사키나", "Salam": "살람", "Rahma": "라흐마", "Wadud": "와두드",
			"Farah": "파라", "Surur": "수루르", "Bashir": "바시르", "Masrur": "마스루르",
			"Farhan": "파르한", "Mubashir": "무바시르", "Sharif": "샤리프", "Asil": "아실",
			"Muhtaram": "무흐타람", "Sayyid": "사이드",

			"Abyad": "아브야드", "Bayda": "바이다", "Naqi": "나키", "Zahir": "자히르",
			"Barid": "바리드", "Aswad": "아스와드", "Ghazal": "가잔", "Habashi": "하바시",
			"Sudan": "수단", "Kahla": "카흘라", "Ahmar": "아흐마르", "Sumaq": "수마크",
			"Hamra": "함라", "Aqiq": "아키크", "Marjan": "마르잔", "Azraq": "아즈라크",
			"Sama": "사마", "Zarqa": "자르카", "Firouz": "피루즈", "Akhdar": "아흐다르",
			"Zaytun": "자이툰", "Khadir": "카디르", "Hadra": "하드라", "Dhahabi": "다하비",
			"Tibr": "티브르", "Zahab": "자하브", "Nurani": "누라니", "Qirat": "키라트",

			"Faqih": "파키흐", "Qari": "카리", "Hafiz": "하피즈", "Ustaz": "우스타즈",
			"Shaykh": "샤이크", "Amir": "아미르", "Malik": "말릭", "Sultan": "술탄",
			"Qaid": "카이드", "Zaim": "자임", "Mudir": "무디르", "Tajir": "타지르",
			"Baya": "바야", "Ghaniy": "가니", "Muyassar": "무야사르", "Kasib": "카시브",
			"Muhajir": "무하지르", "Ghazi": "가지", "Faris": "파리스", "Mujahid": "무자히드",
			"Shair": "샤이르", "Adib": "아딥", "Balaghiy": "발라기", "Fasih": "파시흐",
			"Qalam": "카람", "Nazim": "나짐", "Tabib": "타비브", "Shafi": "샤피",
			"Dawa": "다와", "Ilaj": "일라즈", "Seha": "세하",

			"Lulu": "룰루", "Durra": "두라", "Jawhar": "자우하르", "Yakut": "야쿠트",
			"Firoza": "피루자", "Almas": "알마스", "Bariq": "바리크", "Lama": "라마",
			"Sana": "사나", "Zumrud": "줌루드", "Zabarjad": "자바르자드", "Zaytuni": "자이투니",
			"Sabz": "사브즈",

			"Iman": "이만", "Din": "딘", "Taqwa": "타크와", "Yaqin": "야킨",
			"Salah": "살라", "Hidaya": "히다야", "Dua": "두아", "Dhikr": "디크르",
			"Tasbih": "타스비흐", "Wird": "위르드", "Munajat": "무나자트", "Ishraq": "이슈라크",
			"Baraka": "바라카", "Nima": "니마", "Fadl": "파들", "Khayr": "카이르",
			"Lutf": "루트프",

			"Asad": "아사드", "Layth": "라이스", "Hayder": "하이더", "Ghada": "가다",
			"Saqr": "사크르", "Shahin": "샤힌", "Baz": "바즈", "Tair": "타이르",
			"Sarim": "사림", "Faras": "파라스", "Jawad": "자와드", "Hisan": "히산",
			"Reem": "림", "Mahir": "마히르", "Sawsan": "사우산",

			"Rahim": "라힘", "Quddus": "쿠두스", "Fadil": "파딜", "Nadir": "나디르",
		},
		Meanings: map[string]string{
			"Abdul":    "~의 종, ~을 섬기는 자",
			"Ahmad":    "가장 칭찬받을 만한",
			"Ali":      "높은, 고귀한",
			"Hassan":   "선한, 아름다운",
			"Hussein":  "작고 선한",
			"Ibrahim":  "아브라함, 민족의 아버지",
			"Khalil":   "친구, 사랑하는 사람",
			"Mohammed": "칭찬받는 자",
			"Omar":     "번영하는, 오래 사는",
			"Rashid":   "올바른 길을 가는 자",
			"Yusuf":    "요셉, 하나님이 더해주신다",
			"Zaid":     "증가, 성장",

			"Aisha":   "살아있는, 생동감 있는",
			"Amina":   "신뢰할 만한, 충실한",
			"Fatima":  "젖을 끊는 자, 순결한",
			"Khadija": "조산아, 이른",
			"Layla":   "밤, 어둠의 미인",
			"Maryam":  "마리아, 바다의 방울",
			"Yasmin":  "재스민 꽃",
			"Zara":    "꽃, 새벽",

			"Nour":   "빛, 광명",
			"Qamar":  "달",
			"Shams":  "태양",
			"Ward":   "장미",
			"Hakim":  "현명한, 의사",
			"Karim":  "관대한, 고귀한",
			"Jamil":  "아름다운",
			"Salim":  "평화로운, 안전한",
			"Rahman": "자비로운",
			"Malik":  "왕, 통치자",
			"Aziz":   "강력한, 소중한",
			"Alim":   "아는 자, 학자",
		},
		KeywordPhrases: map[string]string{
			"star":      "별처럼 빛나는",
			"brave":     "용감한",
			"wise":      "지혜로운",
			"beautiful": "아름다운",
			"kind":      "친절한",
			"strong":    "강한",
		},
		DefaultElements:     []string{"Nour", "Amin", "Karim", "Jamil", "Salim", "Fadil", "Rashid", "Nadir"},
		ReligiousAttributes: []string{"Rahman", "Rahim", "Malik", "Quddus", "Salam", "Aziz", "Hakim", "Alim"},
		PoeticFallbacks:     []string{"Nour", "Karim", "Jamil"},
		Categories: []Category{
			{Label: "자연/우주", Keywords: []string{"star", "moon", "sun", "ocean", "desert", "mountain", "flower", "garden"}},
			{Label: "성격/감정", Keywords: []string{"brave", "wise", "beautiful", "kind", "strong", "peaceful", "joyful", "noble"}},
			{Label: "색깔", Keywords: []string{"white", "black", "red", "blue", "green", "golden"}},
			{Label: "직업/지위", Keywords: []string{"scholar", "leader", "merchant", "warrior", "poet", "doctor"}},
			{Label: "보석", Keywords: []string{"pearl", "diamond", "ruby", "emerald"}},
			{Label: "종교/영성", Keywords: []string{"faith", "prayer", "light", "blessing"}},
			{Label: "동물", Keywords: []string{"lion", "falcon", "horse", "gazelle"}},
		},
	}
}
