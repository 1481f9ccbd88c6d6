package main

import (
	"errors"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

// guidance translates a provider error into the actionable message shown
// to the user, in their language.
func guidance(err error, loc models.Locale) string {
	th := loc == models.LocaleThai

	switch {
	case errors.Is(err, provider.ErrQuotaExceeded):
		if th {
			return "⚠️ ระบบทำงานหนัก (Quota เต็ม)\n💡 วิธีแก้: กรุณารอ 1 นาที แล้วลองกดใหม่ครับ"
		}
		return "⚠️ Server Busy (Quota Exceeded).\n💡 FIX: Please wait 60 seconds before trying again."

	case errors.Is(err, provider.ErrCredential), errors.Is(err, provider.ErrAPIKeyRequired):
		if th {
			return "⚠️ กุญแจ API ไม่ถูกต้อง\n💡 วิธีแก้: ตั้งค่าใหม่ด้วย 'luckygen keys set'"
		}
		return "⚠️ Invalid API Key.\n💡 FIX: Set a new key with 'luckygen keys set'."

	case errors.Is(err, provider.ErrSafetyBlocked):
		if th {
			return "⚠️ ติดเงื่อนไขความปลอดภัย (Safety Block)\n💡 วิธีแก้: ลองปิดโหมด 'Magic (AI)' หรือลบคำที่ดูรุนแรง/ล่อแหลมออก"
		}
		return "⚠️ Safety Block: The AI refused this prompt.\n💡 FIX: Try disabling 'Magic Mode' or remove sensitive words (violence, nudity)."

	default:
		if th {
			return "❌ เกิดข้อผิดพลาดในระบบ\nคำแนะนำ: เช็คอินเทอร์เน็ต หรือลองเปลี่ยนคำ"
		}
		return "❌ System Error.\nTip: Check internet or try a shorter prompt."
	}
}
