// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/clbanning/mxj/v2"
)

// attrPrefix is the key prefix mxj gives XML attributes.
const attrPrefix = "-"

// wrapped value keys: mxj stores element text next to attributes under
// "#text"; some remote builds emit an explicit "_" member instead.
var textKeys = []string{"#text", "_"}

var charRefPattern = regexp.MustCompile(`&#(x[0-9a-fA-F]+|[0-9]+);`)

// sanitizeXML removes character references and raw bytes that are not
// legal XML 1.0 characters. The remote engine emits them in free-text
// fields such as narrations.
func sanitizeXML(raw []byte) []byte {
	cleaned := charRefPattern.ReplaceAllFunc(raw, func(ref []byte) []byte {
		num := string(ref[2 : len(ref)-1])
		base := 10
		if num[0] == 'x' {
			num, base = num[1:], 16
		}
		code, err := strconv.ParseInt(num, base, 32)
		if err != nil || !isXMLChar(rune(code)) {
			return nil
		}
		return ref
	})

	return bytes.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, cleaned)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// parseResponse turns a raw response body into nested maps. Values stay
// strings; typing happens in the normalizers.
func parseResponse(raw []byte) (mxj.Map, error) {
	body := bytes.TrimSpace(sanitizeXML(raw))
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	mv, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	return mv, nil
}

// records returns every element named tag found anywhere in mv, whether
// the remote sent one object or a list of them.
func records(mv mxj.Map, tag string) []map[string]any {
	values, err := mv.ValuesForKey(tag)
	if err != nil {
		return nil
	}

	out := make([]map[string]any, 0, len(values))
	for _, v := range values {
		out = append(out, asList(v)...)
	}
	return out
}

// findScalar returns the first non-empty scalar stored under key anywhere
// in mv.
func findScalar(mv mxj.Map, key string) string {
	values, err := mv.ValuesForKey(key)
	if err != nil {
		return ""
	}
	for _, v := range values {
		if s, ok := scalarOf(v); ok && s != "" {
			return s
		}
	}
	return ""
}

// extractScalar reads field key of m with the priority: direct value,
// wrapped value, attribute value, empty default.
func extractScalar(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := scalarOf(v); ok {
			return s
		}
	}
	if v, ok := m[attrPrefix+key]; ok {
		if s, ok := scalarOf(v); ok {
			return s
		}
	}
	return ""
}

// firstScalar tries keys in order and returns the first non-empty value.
func firstScalar(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := extractScalar(m, k); s != "" {
			return s
		}
	}
	return ""
}

func scalarOf(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		if t {
			return "Yes", true
		}
		return "No", true
	case map[string]any:
		for _, k := range textKeys {
			if inner, ok := t[k]; ok {
				return scalarOf(inner)
			}
		}
		return "", false
	case mxj.Map:
		return scalarOf(map[string]any(t))
	case []any:
		if len(t) == 0 {
			return "", false
		}
		return scalarOf(t[0])
	default:
		return "", false
	}
}

// asList normalizes a single object or a list of objects to a list.
func asList(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}
	case mxj.Map:
		return []map[string]any{t}
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// children returns the list stored under key of m.
func children(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	return asList(m[key])
}

// remoteLineError reports an explicit error line in an export response.
func remoteLineError(mv mxj.Map) error {
	if msg := findScalar(mv, "LINEERROR"); msg != "" {
		return fmt.Errorf("%w: %s", ErrRemoteRejected, msg)
	}
	return nil
}
