// Package extract recovers a single JSON object from the free-form text a
// chat model returns. Models are unreliable about wrapping: sometimes the
// payload is bare JSON, sometimes it sits inside a fenced code block, and
// sometimes it is embedded in prose. The extractor tries each shape in order
// without ever executing or evaluating the content.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrEmpty indicates the response contained no text at all.
var ErrEmpty = errors.New("empty response")

// ErrNoObject indicates no parseable JSON object could be recovered.
var ErrNoObject = errors.New("no valid JSON object found in response")

// fencedObject matches a ``` or ```json fenced block and captures the
// innermost {...} span inside it.
var fencedObject = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// Object returns the raw bytes of the first JSON object recovered from text.
// Attempts, in strict order: the whole trimmed text, a fenced code block,
// then the greedy first-{ through last-} span. Each later step runs only when
// the earlier one failed.
func Object(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmpty
	}

	if b, ok := validObject(trimmed); ok {
		return b, nil
	}

	if m := fencedObject.FindStringSubmatch(trimmed); m != nil {
		if b, ok := validObject(m[1]); ok {
			return b, nil
		}
	}

	if i, j := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}"); i >= 0 && j > i {
		if b, ok := validObject(trimmed[i : j+1]); ok {
			return b, nil
		}
	}

	return nil, ErrNoObject
}

// Decode recovers a JSON object from text and unmarshals it into v.
func Decode(text string, v any) error {
	b, err := Object(text)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func validObject(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	b := []byte(s)
	if !json.Valid(b) {
		return nil, false
	}
	return b, true
}
