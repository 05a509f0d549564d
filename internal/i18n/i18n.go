// Package i18n holds the supported UI languages and the small server-side
// string dictionary the chat flow needs.
package i18n

// Language is a supported locale code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Kannada Language = "kn"
)

// Languages lists every supported locale.
var Languages = []Language{English, Hindi, Kannada}

// Parse maps a locale string to a Language, defaulting to English for
// anything unrecognised.
func Parse(s string) Language {
	switch Language(s) {
	case Hindi:
		return Hindi
	case Kannada:
		return Kannada
	default:
		return English
	}
}

// Instruction returns the language directive embedded in the advisor prompt.
func (l Language) Instruction() string {
	switch l {
	case Hindi:
		return "Respond in Hindi (Devanagari script)"
	case Kannada:
		return "Respond in Kannada"
	default:
		return "Respond in English"
	}
}

var dict = map[Language]map[string]string{
	English: {
		"chat.pestControl":  "How do I control pests in my crops?",
		"chat.monsoonTips":  "What should I do during monsoon season?",
		"chat.cropRotation": "Suggest a crop rotation plan",
		"chat.fertilizer":   "Which fertilizer should I use?",
		"chat.errorReply":   "Sorry, I encountered an error. Please try again.",
	},
	Hindi: {
		"chat.pestControl":  "मैं अपनी फसलों में कीटों को कैसे नियंत्रित करूं?",
		"chat.monsoonTips":  "मानसून के मौसम में मुझे क्या करना चाहिए?",
		"chat.cropRotation": "फसल चक्र की योजना सुझाएं",
		"chat.fertilizer":   "मुझे कौन सा उर्वरक उपयोग करना चाहिए?",
		"chat.errorReply":   "क्षमा करें, एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
	},
	Kannada: {
		"chat.pestControl":  "ನನ್ನ ಬೆಳೆಗಳಲ್ಲಿ ಕೀಟಗಳನ್ನು ಹೇಗೆ ನಿಯಂತ್ರಿಸಲಿ?",
		"chat.monsoonTips":  "ಮುಂಗಾರು ಹಂಗಾಮಿನಲ್ಲಿ ನಾನು ಏನು ಮಾಡಬೇಕು?",
		"chat.cropRotation": "ಬೆಳೆ ಸರದಿ ಯೋಜನೆ ಸೂಚಿಸಿ",
		"chat.fertilizer":   "ನಾನು ಯಾವ ಗೊಬ್ಬರ ಬಳಸಬೇಕು?",
		"chat.errorReply":   "ಕ್ಷಮಿಸಿ, ದೋಷ ಸಂಭವಿಸಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	},
}

// T looks up key for lang, falling back to English when the localised string
// is missing.
func T(lang Language, key string) string {
	if s, ok := dict[lang][key]; ok {
		return s
	}
	return dict[English][key]
}
