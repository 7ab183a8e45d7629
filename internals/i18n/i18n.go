// Two-language (ar/en) message bundle for user-facing API messages.
// Arabic is the default; document direction follows the language.
package i18n

import "strings"

const (
	LangArabic  = "ar"
	LangEnglish = "en"

	// CookieName is the persisted language preference key.
	CookieName = "jebshit_lang"
)

var messages = map[string]map[string]string{
	"saved": {
		LangArabic:  "تم الحفظ بنجاح",
		LangEnglish: "Saved successfully",
	},
	"created": {
		LangArabic:  "تم الإنشاء بنجاح",
		LangEnglish: "Created successfully",
	},
	"updated": {
		LangArabic:  "تم التحديث بنجاح",
		LangEnglish: "Updated successfully",
	},
	"deleted": {
		LangArabic:  "تم الحذف بنجاح",
		LangEnglish: "Deleted successfully",
	},
	"list.ok": {
		LangArabic:  "تم جلب البيانات",
		LangEnglish: "Data fetched",
	},
	"not_found": {
		LangArabic:  "السجل غير موجود",
		LangEnglish: "Record not found",
	},
	"save_failed": {
		LangArabic:  "فشل الحفظ، حاول مرة أخرى",
		LangEnglish: "Save failed, please try again",
	},
	"delete_failed": {
		LangArabic:  "فشل الحذف، حاول مرة أخرى",
		LangEnglish: "Delete failed, please try again",
	},
	"upload.invalid_type": {
		LangArabic:  "نوع الملف غير مدعوم",
		LangEnglish: "Unsupported file type",
	},
	"upload.too_large": {
		LangArabic:  "حجم الملف يتجاوز الحد المسموح",
		LangEnglish: "File exceeds the maximum allowed size",
	},
	"upload.failed": {
		LangArabic:  "فشل رفع الملف",
		LangEnglish: "Upload failed",
	},
	"upload.max_reached": {
		LangArabic:  "تم بلوغ الحد الأقصى للملفات",
		LangEnglish: "Maximum number of files reached",
	},
	"auth.invalid_email": {
		LangArabic:  "البريد الإلكتروني غير صالح",
		LangEnglish: "Invalid email address",
	},
	"auth.wrong_password": {
		LangArabic:  "كلمة المرور غير صحيحة",
		LangEnglish: "Wrong password",
	},
	"auth.user_disabled": {
		LangArabic:  "تم تعطيل هذا الحساب",
		LangEnglish: "This account has been disabled",
	},
	"auth.too_many_requests": {
		LangArabic:  "محاولات كثيرة، حاول لاحقاً",
		LangEnglish: "Too many attempts, try again later",
	},
	"auth.generic": {
		LangArabic:  "فشل تسجيل الدخول",
		LangEnglish: "Sign-in failed",
	},
}

// T looks up a message key for a language, falling back to English, then to
// the key itself so a missing entry is visible rather than silent.
func T(lang, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if v, ok := m[Normalize(lang)]; ok {
		return v
	}
	return m[LangEnglish]
}

// Normalize collapses any input to one of the two supported languages.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, LangEnglish) {
		return LangEnglish
	}
	return LangArabic
}

// Dir returns the document text direction for a language.
func Dir(lang string) string {
	if Normalize(lang) == LangArabic {
		return "rtl"
	}
	return "ltr"
}
