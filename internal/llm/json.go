package llm

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractString returns the string found at path in payload, for example
// "choices.0.message.content". Numeric segments index arrays and every other
// segment names an object key. Missing keys, containers of the wrong kind,
// non-string leaves and payloads that are not JSON objects are reported as
// MalformedResponseError.
func ExtractString(payload []byte, path string) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", &MalformedResponseError{Reason: "invalid JSON"}
	}
	v := gjson.ParseBytes(payload)
	if !v.IsObject() {
		return "", &MalformedResponseError{Reason: "expected a JSON object"}
	}

	var walked []string
	for _, key := range strings.Split(path, ".") {
		at := strings.Join(walked, ".")
		if isIndex(key) {
			if !v.IsArray() {
				return "", &MalformedResponseError{Path: at, Reason: "expected an array, got " + kind(v)}
			}
		} else if !v.IsObject() {
			return "", &MalformedResponseError{Path: at, Reason: "expected an object, got " + kind(v)}
		}
		walked = append(walked, key)
		v = v.Get(gjson.Escape(key))
		if !v.Exists() {
			return "", &MalformedResponseError{Path: path, Reason: "not found"}
		}
	}

	if v.Type != gjson.String {
		return "", &MalformedResponseError{Path: path, Reason: "expected a string, got " + kind(v)}
	}
	return v.String(), nil
}

func isIndex(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func kind(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	}
	return v.Type.String()
}
