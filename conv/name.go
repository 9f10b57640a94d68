package conv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/viant/tagly/format/text"
)

const accessorPrefix = "Get"

// FieldName returns output field name for accessor method name, i.e. GetMainColor -> mainColor
func FieldName(methodName string) (string, bool) {
	if !strings.HasPrefix(methodName, accessorPrefix) {
		return "", false
	}
	name := methodName[len(accessorPrefix):]
	if name == "" {
		return "", false
	}
	return lowerFirst(name), true
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

func upperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// formatName formats upper camel source name with case format
func formatName(source string, caseFormat text.CaseFormat) string {
	if source == "" {
		return source
	}
	return text.CaseFormatUpperCamel.Format(source, caseFormat)
}
