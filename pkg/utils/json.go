package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação, usado pela saída --json do CLI
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return string(raw)
		}
		in = parsed
	}

	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", in)
	}

	return string(buffer)
}
