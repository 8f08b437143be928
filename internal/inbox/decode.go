// Package inbox receives configuration updates from the settings page and
// from a watched settings file.
package inbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
)

// Decoded is a parsed settings message.
type Decoded struct {
	Update face.Update
	// Ignored lists fields that were unknown or malformed.
	Ignored []string
}

// Decode parses a JSON object of settings fields. Keys are page names
// ("colorbg") or numeric keys ("0"). Values may be numbers, booleans,
// hex strings ("0xFF0000", "#FF0000"), decimal strings or palette names.
// Only malformed JSON is an error; bad fields land in Ignored.
func Decode(data []byte) (Decoded, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return Decoded{}, fmt.Errorf("invalid settings message: %w", err)
	}

	d := Decoded{Update: face.Update{}}
	for name, msg := range raw {
		k, ok := face.ParseKey(name)
		if !ok {
			d.Ignored = append(d.Ignored, name)
			continue
		}
		v, err := decodeValue(msg)
		if err != nil {
			d.Ignored = append(d.Ignored, name)
			continue
		}
		d.Update[k] = v
	}
	sort.Strings(d.Ignored)
	return d, nil
}

func decodeValue(msg json.RawMessage) (int32, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}

	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("value %s is not a 32-bit integer", v)
		}
		return int32(n), nil
	case string:
		return ParseValue(v)
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

// ParseValue reads a single field value in any of the forms Decode accepts.
func ParseValue(s string) (int32, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true", "on", "yes":
		return 1, nil
	case "false", "off", "no":
		return 0, nil
	}
	if v, ok := face.ColorByName(s); ok {
		return v, nil
	}

	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "#"):
		base, digits = 16, s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, digits = 16, s[2:]
	}
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return int32(n), nil
}

// Encode renders a snapshot with page names. Colors are "#RRGGBB"
// strings, toggles are booleans and the tick count is a number.
func Encode(u face.Update) map[string]any {
	out := make(map[string]any, len(u))
	for k, v := range u {
		switch {
		case k.IsColor():
			out[k.String()] = domain.Color8FromHex(v).String()
		case k == face.KeyShadows || k == face.KeyRectangularTicks:
			out[k.String()] = v != 0
		default:
			out[k.String()] = v
		}
	}
	return out
}

// KeyNames returns the page names of keys in order.
func KeyNames(keys []face.Key) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}
