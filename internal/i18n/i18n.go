// Package i18n holds the bilingual (English/Arabic) message catalog for
// user-facing errors emitted by the core flows.
package i18n

// Language is a display language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Parse returns the language for a stored code, falling back to
// English for anything unknown or empty.
func Parse(code string) Language {
	if Language(code) == Arabic {
		return Arabic
	}
	return English
}

// Message identifiers used by the services.
const (
	MsgCartEmpty           = "cart_empty"
	MsgRequiredFields      = "required_fields"
	MsgSizeRequired        = "size_required"
	MsgOrderCreateFailed   = "order_create_failed"
	MsgOrdersLoadFailed    = "orders_load_failed"
	MsgDashboardLoadFailed = "dashboard_load_failed"
	MsgProductNotFound     = "product_not_found"
)

var messages = map[string]map[Language]string{
	MsgCartEmpty: {
		English: "Your cart is empty",
		Arabic:  "السلة فارغة",
	},
	MsgRequiredFields: {
		English: "Please fill all required fields",
		Arabic:  "يرجى ملء جميع الحقول المطلوبة",
	},
	MsgSizeRequired: {
		English: "Please select a size",
		Arabic:  "يرجى اختيار المقاس",
	},
	MsgOrderCreateFailed: {
		English: "Failed to create order",
		Arabic:  "فشل إنشاء الطلب",
	},
	MsgOrdersLoadFailed: {
		English: "Error loading orders",
		Arabic:  "حدث خطأ في تحميل الطلبات",
	},
	MsgDashboardLoadFailed: {
		English: "Failed to load dashboard statistics",
		Arabic:  "فشل تحميل إحصائيات لوحة التحكم",
	},
	MsgProductNotFound: {
		English: "Product not found",
		Arabic:  "المنتج غير موجود",
	},
}

// T resolves a message id in the given language. Unknown languages fall
// back to English; unknown ids return the id itself so a missing
// catalog entry is visible rather than silent.
func T(lang Language, id string) string {
	byLang, ok := messages[id]
	if !ok {
		return id
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[English]
}
