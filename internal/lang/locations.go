package lang

// locationTable holds curated translations for epicenter region names as
// they appear in the quake feed. Coverage is heaviest for English; regions
// around Tokyo and other population centers additionally carry Chinese and
// Korean. Everything else goes through the AI path once and lands in the
// persistent cache.
var locationTable = map[string]map[string]string{
	"北海道北西沖": {"en": "Off the northwest coast of Hokkaido"},
	"北海道南西沖": {"en": "Off the southwest coast of Hokkaido"},
	"北海道東方沖": {"en": "Off the east coast of Hokkaido"},
	"十勝沖":    {"en": "Off Tokachi"},
	"釧路沖":    {"en": "Off Kushiro"},
	"根室半島南東沖": {"en": "Off the southeast coast of Nemuro Peninsula"},
	"青森県東方沖":  {"en": "Off the east coast of Aomori Prefecture"},
	"岩手県沖":    {"en": "Off Iwate Prefecture"},
	"三陸沖":    {"en": "Off Sanriku", "zh": "三陆近海", "ko": "산리쿠 앞바다"},
	"宮城県沖":    {"en": "Off Miyagi Prefecture", "zh": "宫城县近海", "ko": "미야기현 앞바다"},
	"福島県沖":    {"en": "Off Fukushima Prefecture", "zh": "福岛县近海", "ko": "후쿠시마현 앞바다"},
	"茨城県沖":    {"en": "Off Ibaraki Prefecture"},
	"茨城県南部":   {"en": "Southern Ibaraki Prefecture"},
	"千葉県東方沖":  {"en": "Off the east coast of Chiba Prefecture"},
	"千葉県北西部":  {"en": "Northwestern Chiba Prefecture"},
	"東京都23区":  {"en": "Tokyo 23 Wards", "zh": "东京23区", "zh-TW": "東京23區", "ko": "도쿄 23구"},
	"東京湾":     {"en": "Tokyo Bay", "zh": "东京湾", "ko": "도쿄만"},
	"相模湾":     {"en": "Sagami Bay"},
	"神奈川県西部":  {"en": "Western Kanagawa Prefecture"},
	"伊豆大島近海":  {"en": "Near Izu Oshima Island"},
	"新島・神津島近海": {"en": "Near Niijima and Kozushima Islands"},
	"静岡県伊豆地方": {"en": "Izu, Shizuoka Prefecture"},
	"駿河湾":     {"en": "Suruga Bay"},
	"遠州灘":     {"en": "Enshunada Sea"},
	"愛知県西部":   {"en": "Western Aichi Prefecture"},
	"三重県南東沖":  {"en": "Off the southeast coast of Mie Prefecture"},
	"大阪府北部":   {"en": "Northern Osaka Prefecture", "zh": "大阪府北部", "ko": "오사카부 북부"},
	"兵庫県南部":   {"en": "Southern Hyogo Prefecture"},
	"和歌山県北部":  {"en": "Northern Wakayama Prefecture"},
	"鳥取県中部":   {"en": "Central Tottori Prefecture"},
	"島根県東部":   {"en": "Eastern Shimane Prefecture"},
	"安芸灘":     {"en": "Aki Nada Sea"},
	"伊予灘":     {"en": "Iyo Nada Sea"},
	"豊後水道":    {"en": "Bungo Channel"},
	"日向灘":     {"en": "Hyuganada Sea"},
	"熊本県熊本地方": {"en": "Kumamoto, Kumamoto Prefecture"},
	"鹿児島湾":    {"en": "Kagoshima Bay"},
	"奄美大島近海":  {"en": "Near Amami Oshima Island"},
	"沖縄本島近海":  {"en": "Near Okinawa Main Island", "zh": "冲绳本岛近海", "ko": "오키나와 본섬 근해"},
	"宮古島近海":   {"en": "Near Miyakojima Island"},
	"石垣島近海":   {"en": "Near Ishigakijima Island"},
	"与那国島近海":  {"en": "Near Yonaguni Island"},
	"能登半島沖":   {"en": "Off Noto Peninsula"},
	"石川県能登地方": {"en": "Noto, Ishikawa Prefecture"},
	"佐渡付近":    {"en": "Near Sado"},
	"新潟県中越地方": {"en": "Chuetsu, Niigata Prefecture"},
	"長野県北部":   {"en": "Northern Nagano Prefecture"},
	"岐阜県飛騨地方": {"en": "Hida, Gifu Prefecture"},
}

// Location looks up a curated epicenter region translation.
func Location(name, target string) (string, bool) {
	row, ok := locationTable[name]
	if !ok {
		return "", false
	}
	v, ok := row[target]
	return v, ok
}

// LocationCount reports how many region names the curated table covers.
func LocationCount() int {
	return len(locationTable)
}
