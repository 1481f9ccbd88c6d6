// Package fortune draws daily fortune slips (siamsi). Drawing never fails:
// when the remote oracle is unreachable a slip comes from the offline deck.
package fortune

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

const oracleInstruction = `**Role:** Divine Oracle & Astrologer.

**Objective:**
Generate a short, auspicious daily fortune (Siamsi) based on the [Deity].

**[LANGUAGE PROTOCOL]**
- **IF Target = 'th' (Thai):**
   - Verse: 2-line Thai rhyme.
   - Prediction: Encouraging Thai prediction.
- **IF Target = 'en' (English):**
   - Verse: A short 2-line spiritual poem/rhyme in English. (e.g., "Stars align for you today / Fortunes come without delay").
   - Prediction: Clear, mystical English prediction.

**Tone:** Sacred, Encouraging, Poetic.

**Output Format (JSON):**
{
  "verse": "string",
  "prediction": "string",
  "lucky_numbers": "string"
}`

var offlineFortunes = map[models.Locale][]models.FortuneResult{
	models.LocaleThai: {
		{Verse: "จิตตั้งมั่น อธิษฐาน ด้วยศรัทธา\nพรเมตตา มหาเทพ ประทานให้", Prediction: "สิ่งที่หวังไว้กำลังจะสำเร็จผล ขอให้หมั่นทำความดี", LuckyNumbers: "09, 99"},
		{Verse: "เมฆหมอกจาง สว่างแจ้ง แห่งหนทาง\nความอ้างว้าง จักหายไป ในเร็ววัน", Prediction: "อุปสรรคกำลังจะผ่านพ้น โอกาสใหม่ๆ กำลังเข้ามา", LuckyNumbers: "14, 28"},
		{Verse: "ทำดีได้ดี มีผล บุญส่งเสริม\nบารมีเพิ่ม พูนสุข ทุกสถาน", Prediction: "ผลบุญที่ทำมาจะส่งผลให้มีความสุขความเจริญ", LuckyNumbers: "55, 88"},
		{Verse: "แม้นเหนื่อยยาก ลำบากกาย ในวันนี้\nวันข้างหน้า สุขขี มั่งมีทรัพย์", Prediction: "ความพยายามจะไม่สูญเปล่า ความสำเร็จรออยู่ไม่ไกล", LuckyNumbers: "36, 63"},
		{Verse: "ดวงชะตา รุ่งโรจน์ โชติช่วงนัก\nคนรักทัก ผู้ใหญ่เอ็นดู ชูส่งเสริม", Prediction: "จะเป็นที่รักของผู้คน ผู้ใหญ่จะให้การสนับสนุน", LuckyNumbers: "24, 42"},
	},
	models.LocaleEnglish: {
		{Verse: "Clouds disperse, the sun shines bright,\nGuiding you to future light.", Prediction: "Obstacles are fading. New opportunities await.", LuckyNumbers: "14, 28"},
		{Verse: "Good deeds sown in faith and love,\nBring sweet blessings from above.", Prediction: "Your kindness will return to you a hundredfold.", LuckyNumbers: "55, 88"},
		{Verse: "Though the climb is steep today,\nSuccess meets you on the way.", Prediction: "Persistence is key. Victory is near.", LuckyNumbers: "36, 63"},
		{Verse: "Stars align and fortune calls,\nFavor rises, nothing falls.", Prediction: "A stroke of good luck is coming your way.", LuckyNumbers: "09, 99"},
		{Verse: "With open heart and steady mind,\nTrue contentment you shall find.", Prediction: "Focus on your inner peace, and wealth will follow.", LuckyNumbers: "24, 42"},
	},
}

// Oracle draws fortunes, remote-first with offline fallbacks. One slip per
// deity and locale is memoized until local midnight so repeated draws on
// the same day agree.
type Oracle struct {
	provider provider.Provider
	cache    *cache.Cache
	pick     func(n int) int
	now      func() time.Time
}

// NewOracle builds an Oracle. A nil provider is valid; every draw then
// comes from the offline deck.
func NewOracle(p provider.Provider) *Oracle {
	return &Oracle{
		provider: p,
		cache:    cache.New(time.Hour, 10*time.Minute),
		pick:     rand.Intn,
		now:      time.Now,
	}
}

// Daily draws the fortune for a deity. It never returns an error.
func (o *Oracle) Daily(ctx context.Context, subject string, loc models.Locale) models.FortuneResult {
	key := string(loc) + "|" + subject
	if cached, ok := o.cache.Get(key); ok {
		return cached.(models.FortuneResult)
	}

	result := o.draw(ctx, subject, loc)
	o.cache.Set(key, result, o.untilMidnight())
	return result
}

func (o *Oracle) draw(ctx context.Context, subject string, loc models.Locale) models.FortuneResult {
	if o.provider == nil {
		return o.offline(loc)
	}

	result, err := o.provider.Fortune(ctx, &models.FortuneRequest{
		SystemInstruction: oracleInstruction,
		Subject:           subject,
		Locale:            loc,
	})
	if err != nil {
		if errors.Is(err, provider.ErrQuotaExceeded) {
			return o.offline(loc)
		}
		return genericFallback(loc)
	}

	if result.Verse == "" {
		if loc == models.LocaleThai {
			result.Verse = "ขอพรพระให้คุ้มครอง"
		} else {
			result.Verse = "Blessings fall like gentle rain"
		}
	}
	if result.Prediction == "" {
		if loc == models.LocaleThai {
			result.Prediction = "วันนี้เป็นวันดีของคุณ"
		} else {
			result.Prediction = "Today brings new opportunities."
		}
	}
	if result.LuckyNumbers == "" {
		result.LuckyNumbers = "99, 108"
	}
	return *result
}

func (o *Oracle) offline(loc models.Locale) models.FortuneResult {
	deck := offlineFortunes[loc]
	if len(deck) == 0 {
		deck = offlineFortunes[models.LocaleEnglish]
	}
	return deck[o.pick(len(deck))]
}

func genericFallback(loc models.Locale) models.FortuneResult {
	if loc == models.LocaleThai {
		return models.FortuneResult{
			Verse:        "ความพยายามอยู่ที่ไหน\nความสำเร็จอยู่ที่นั่น",
			Prediction:   "ให้หมั่นทำความดี",
			LuckyNumbers: "09",
		}
	}
	return models.FortuneResult{
		Verse:        "Where effort goes,\nSuccess flows.",
		Prediction:   "Keep good faith, miracles happen.",
		LuckyNumbers: "09",
	}
}

func (o *Oracle) untilMidnight() time.Duration {
	now := o.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}
