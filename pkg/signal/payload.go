package signal

import (
	"fmt"
	"strings"
)

// MergeParams combines two parameter maps, with entries from override
// replacing same-named entries in base. Neither input is modified.
func MergeParams(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// EncodePayload renders parameters as "key:value" strings. Colons in
// keys are replaced with underscores so the key can always be split off
// unambiguously; values are passed through untouched. Output order is
// not stable across calls.
func EncodePayload(params map[string]string) []string {
	payload := make([]string, 0, len(params))
	for k, v := range params {
		payload = append(payload, fmt.Sprintf("%s:%s", strings.ReplaceAll(k, ":", "_"), v))
	}
	return payload
}
