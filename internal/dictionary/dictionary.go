// Package dictionary maps known amulet and deity keywords to fixed English
// visual descriptions, grounding image generation in canonical iconography
// the remote model alone renders inconsistently.
package dictionary

import "strings"

// Entry pairs a Thai keyword with its canonical visual description.
type Entry struct {
	Keyword     string
	Description string
}

// entries is scanned in order and the FIRST keyword found as a substring of
// the input wins. Overlapping keywords (e.g. a general term contained in a
// more specific one) are resolved purely by position in this table, never by
// length or specificity. Reordering entries changes behavior.
var entries = []Entry{
	// Benjapakee and famous amulets.
	{"วัดระฆัง", "Phra Somdej Wat Rakang (Pim Yai), the Emperor of Amulets. Rectangular sacred powder tablet. Deeply recessed bell-shaped arch (Sum Ruen Kaew). Buddha seated on a three-tiered base. The chest is broad and sturdy (Ok Phaye). Texture is dry, ancient, creamy white or pale yellow, showing distinctive natural cracking patterns (Taek Lai Nga) or traces of gold leaf and black lacquer."},
	{"สมเด็จวัดระฆัง", "Phra Somdej Wat Rakang (Pim Yai), the Emperor of Amulets. Rectangular sacred powder tablet. Deeply recessed bell-shaped arch (Sum Ruen Kaew). Buddha seated on a three-tiered base. The chest is broad and sturdy (Ok Phaye). Texture is dry, ancient, creamy white or pale yellow, showing distinctive natural cracking patterns (Taek Lai Nga) or traces of gold leaf and black lacquer."},

	{"พระสมเด็จ", "Rectangular amulet, Phra Somdej style. Sitting Buddha in meditation (Samadhi) pose on a three-tiered throne base. Smooth, rounded arch frame (ซุ้มครอบแก้ว). Minimalist, ancient powder texture with natural cracks (แตกลายงา). No facial features."},
	{"สมเด็จ", "Rectangular amulet, Phra Somdej style. Sitting Buddha in meditation (Samadhi) pose on a three-tiered throne base. Smooth, rounded arch frame (ซุ้มครอบแก้ว). Minimalist, ancient powder texture with natural cracks (แตกลายงา). No facial features."},

	{"พระร่วงรางปืน", "Ancient standing Buddha amulet, Khmer-Lopburi art style. Standing inside a tall, narrow, U-shaped arched frame resembling an antique gun barrel. Wearing heavy ancient royal attire, crown. Both hands raised in double Abhaya Mudra (ปางห้ามญาติ). Elongated body, very old metallic/leaden texture with reddish rust."},
	{"พระร่วง", "Ancient standing Buddha amulet, Khmer-Lopburi art style. Standing inside a tall, narrow, U-shaped arched frame resembling an antique gun barrel. Wearing heavy ancient royal attire, crown. Both hands raised in double Abhaya Mudra (ปางห้ามญาติ). Elongated body, very old metallic/leaden texture with reddish rust."},

	{"พระปิดตา", "Monk amulet figure sitting in full lotus posture. Using both hands to tightly cover the eyes (Pidta pose). Plump, robust, rounded body shape symbolizing wealth. No facial features visible. Smooth curves, sacred powder texture."},
	{"ปิดตา", "Monk amulet figure sitting in full lotus posture. Using both hands to tightly cover the eyes (Pidta pose). Plump, robust, rounded body shape symbolizing wealth. No facial features visible. Smooth curves, sacred powder texture."},

	{"พระนางพญา", "Triangular shaped amulet. Sitting Buddha in subduing Mara pose (ปางมารวิชัย). Broad shoulders, narrow waist, bulging chest (อกนูน). No facial details, smooth ancient clay texture."},
	{"นางพญา", "Triangular shaped amulet. Sitting Buddha in subduing Mara pose (ปางมารวิชัย). Broad shoulders, narrow waist, bulging chest (อกนูน). No facial details, smooth ancient clay texture."},

	{"พระซุ้มกอ", "Thumb-shaped amulet (ทรงหัวแม่มือ). Sitting Buddha in meditation pose within an ornate Thai Kanok pattern arch (ซุ้มกนก). Looks graceful, soft ancient clay texture."},
	{"ซุ้มกอ", "Thumb-shaped amulet (ทรงหัวแม่มือ). Sitting Buddha in meditation pose within an ornate Thai Kanok pattern arch (ซุ้มกนก). Looks graceful, soft ancient clay texture."},

	{"พระผงสุพรรณ", "Triangular amulet with cut top corners. Sitting Buddha in subduing Mara pose. Prominent chest, elongated face, ancient clay texture."},

	{"หลวงพ่อเงิน", "Small cast statuette (รูปหล่อโบราณ) of an elderly plump monk (Luang Phor Ngern). Sitting smiling in meditation. Round face, bald head. Rough, ancient cast brass/bronze texture with natural patina stains (คราบเบ้า)."},
	{"วัดบางคลาน", "Small cast statuette (รูปหล่อโบราณ) of an elderly plump monk (Luang Phor Ngern). Sitting smiling in meditation. Round face, bald head. Rough, ancient cast brass/bronze texture with natural patina stains (คราบเบ้า)."},

	{"หลวงปู่ทวด", "Statue of elderly monk Luang Pu Thuat sitting in lotus position. Wears glasses (optional), draped in monk robes. Serene old face, distinct facial features. Black or dark texture."},
	{"ปู่ทวด", "Statue of elderly monk Luang Pu Thuat sitting in lotus position. Wears glasses (optional), draped in monk robes. Serene old face, distinct facial features. Black or dark texture."},

	{"ขุนแผน", "Pentagonal shaped amulet (ทรงห้าเหลี่ยม). Buddha sitting inside a house-like arch (ซุ้มเรือนแก้ว). Warrior-like elegance, charm and attraction vibes."},

	{"ท้าวเวสสุวรรณ", "Giant Yaksha Demon God (Thao Wessuwan) standing holding a club. Fierce face, fangs, wearing golden armor and regalia. Powerful stance, giant aura."},

	{"พญาครุฑ", "Garuda deity, half-man half-bird. Golden wings spread out, muscular human torso, bird head and beak, talons. Majestic and powerful."},

	{"พญานาค", "Naga Serpent King. Multi-headed cobra hood, scales, mystical underwater or cave setting. Glowing eyes, divine aura."},
}

// Find returns the visual description of the first entry whose keyword is a
// raw substring of text, or "" when no keyword matches. The scan is not
// tokenized and not normalized for case or diacritics.
func Find(text string) string {
	for _, e := range entries {
		if strings.Contains(text, e.Keyword) {
			return e.Description
		}
	}
	return ""
}

// Entries returns a copy of the dictionary in scan order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
