package i18n

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data carries optional parameters to embed in the message (for example,
// "min", "max" or "precision").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.lookup(code)
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "値を解析できません: {input}"
		case "too_small":
			return "最小値 {min} を下回っています"
		case "too_big":
			return "最大値 {max} を超えています"
		case "precision":
			return "桁数が {precision} を超えています"
		case "scale":
			return "小数部の桁数が {scale} を超えています"
		case "too_short":
			return "短すぎます (最小 {min} 文字)"
		case "too_long":
			return "長すぎます (最大 {max} 文字)"
		case "invalid_enum":
			return "許可された値ではありません"
		case "pattern":
			return "パターン {pattern} に一致しません"
		case "invalid_value":
			return "不正な値です"
		case "unknown_key":
			return "未知のキーです"
		case "required":
			return "必須の値が不足しています"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "cannot parse {input}"
		case "too_small":
			return "value is below minimum {min}"
		case "too_big":
			return "value is above maximum {max}"
		case "precision":
			return "value has more than {precision} digits"
		case "scale":
			return "value has more than {scale} fractional digits"
		case "too_short":
			return "too short (min {min} characters)"
		case "too_long":
			return "too long (max {max} characters)"
		case "invalid_enum":
			return "value is not in the domain"
		case "pattern":
			return "value does not match {pattern}"
		case "invalid_value":
			return "invalid value"
		case "unknown_key":
			return "unknown key"
		case "required":
			return "required value missing"
		}
	}
	return ""
}

// expand substitutes {key} placeholders. Unknown placeholders are left as is.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
