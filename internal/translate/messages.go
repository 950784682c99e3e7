package translate

import (
	"strconv"
	"strings"
)

// Earthquake announcement templates. There is no ja entry: Japanese
// responses keep the feed's original message, and unknown languages fall
// back to English. The easy_ja template carries no magnitude.
var earthquakeTemplates = map[string]string{
	"en":      "[Earthquake] An earthquake occurred in {location}. Magnitude {magnitude}, Maximum intensity {intensity}. Depth: {depth}km. {tsunami_info}",
	"zh":      "【地震信息】{location}发生地震。震级{magnitude}，最大震度{intensity}。震源深度约{depth}公里。{tsunami_info}",
	"zh-TW":   "【地震資訊】{location}發生地震。規模{magnitude}，最大震度{intensity}。震源深度約{depth}公里。{tsunami_info}",
	"ko":      "【지진정보】{location}에서 지진이 발생했습니다. 규모 {magnitude}, 최대진도 {intensity}. 진원 깊이 약 {depth}km. {tsunami_info}",
	"vi":      "[Động đất] Động đất xảy ra tại {location}. Cường độ {magnitude}, Cường độ tối đa {intensity}. Độ sâu: {depth}km. {tsunami_info}",
	"th":      "[แผ่นดินไหว] เกิดแผ่นดินไหวที่ {location} ขนาด {magnitude} ความรุนแรงสูงสุด {intensity} ความลึก: {depth} กม. {tsunami_info}",
	"id":      "[Gempa] Gempa bumi terjadi di {location}. Magnitudo {magnitude}, Intensitas maksimum {intensity}. Kedalaman: {depth}km. {tsunami_info}",
	"ms":      "[Gempa Bumi] Gempa bumi berlaku di {location}. Magnitud {magnitude}, Keamatan maksimum {intensity}. Kedalaman: {depth}km. {tsunami_info}",
	"tl":      "[Lindol] Nagkaroon ng lindol sa {location}. Magnitude {magnitude}, Pinakamataas na intensity {intensity}. Lalim: {depth}km. {tsunami_info}",
	"fr":      "[Séisme] Un séisme s'est produit à {location}. Magnitude {magnitude}, Intensité maximale {intensity}. Profondeur: {depth}km. {tsunami_info}",
	"de":      "[Erdbeben] Ein Erdbeben ereignete sich in {location}. Magnitude {magnitude}, Maximale Intensität {intensity}. Tiefe: {depth}km. {tsunami_info}",
	"it":      "[Terremoto] Si è verificato un terremoto a {location}. Magnitudo {magnitude}, Intensità massima {intensity}. Profondità: {depth}km. {tsunami_info}",
	"es":      "[Terremoto] Ocurrió un terremoto en {location}. Magnitud {magnitude}, Intensidad máxima {intensity}. Profundidad: {depth}km. {tsunami_info}",
	"ne":      "[भूकम्प] {location} मा भूकम्प आयो। म्याग्निच्युड {magnitude}, अधिकतम तीव्रता {intensity}। गहिराई: {depth} किमी। {tsunami_info}",
	"easy_ja": "【じしん】{location}で じしんが ありました。つよさは {intensity} です。ふかさは {depth}キロメートル。{tsunami_info}",
}

type tsunamiClause struct {
	safe    string
	warning string
}

var tsunamiClauses = map[string]tsunamiClause{
	"en":      {"There is no tsunami risk from this earthquake.", "Tsunami information: {warning}."},
	"zh":      {"此次地震没有海啸风险。", "海啸信息：{warning}。"},
	"zh-TW":   {"此次地震沒有海嘯風險。", "海嘯資訊：{warning}。"},
	"ko":      {"이 지진으로 인한 쓰나미 위험은 없습니다.", "쓰나미 정보: {warning}."},
	"vi":      {"Không có nguy cơ sóng thần từ trận động đất này.", "Thông tin sóng thần: {warning}."},
	"th":      {"ไม่มีความเสี่ยงจากสึนามิจากแผ่นดินไหวครั้งนี้", "ข้อมูลสึนามิ: {warning}"},
	"id":      {"Tidak ada risiko tsunami dari gempa ini.", "Informasi tsunami: {warning}."},
	"ms":      {"Tiada risiko tsunami daripada gempa bumi ini.", "Maklumat tsunami: {warning}."},
	"tl":      {"Walang panganib ng tsunami mula sa lindol na ito.", "Impormasyon tungkol sa tsunami: {warning}."},
	"fr":      {"Il n'y a pas de risque de tsunami suite à ce séisme.", "Information tsunami: {warning}."},
	"de":      {"Es besteht keine Tsunami-Gefahr durch dieses Erdbeben.", "Tsunami-Information: {warning}."},
	"it":      {"Non c'è rischio di tsunami da questo terremoto.", "Informazioni tsunami: {warning}."},
	"es":      {"No hay riesgo de tsunami por este terremoto.", "Información de tsunami: {warning}."},
	"ne":      {"यस भूकम्पबाट सुनामीको जोखिम छैन।", "सुनामी जानकारी: {warning}।"},
	"easy_ja": {"この じしんで つなみの しんぱいは ありません。", "つなみ じょうほう: {warning}。"},
}

// EarthquakeMessage composes the quake announcement for target from
// already-translated parts. tsunamiJA decides the tsunami clause: なし (or
// the feed's literal "None") selects the safe clause.
func (t *Translator) EarthquakeMessage(target, location string, magnitude float64, intensity string, depth int, tsunamiJA, tsunamiTranslated string) string {
	template, ok := earthquakeTemplates[target]
	if !ok {
		template = earthquakeTemplates["en"]
	}
	clause, ok := tsunamiClauses[target]
	if !ok {
		clause = tsunamiClauses["en"]
	}

	tsunamiInfo := clause.safe
	if tsunamiJA != "なし" && tsunamiJA != "None" {
		tsunamiInfo = strings.ReplaceAll(clause.warning, "{warning}", tsunamiTranslated)
	}

	return strings.NewReplacer(
		"{location}", location,
		"{magnitude}", strconv.FormatFloat(magnitude, 'f', 1, 64),
		"{intensity}", intensity,
		"{depth}", strconv.Itoa(depth),
		"{tsunami_info}", tsunamiInfo,
	).Replace(template)
}
