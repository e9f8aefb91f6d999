package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/sumkit/summarize"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects a text rendering of a summarization result.
type Format string

const (
	// Stacked prints one section per profile with a header per layer.
	// It is the default, meant for reading.
	Stacked Format = "stacked"

	// Compact prints one "profile.layer: text" line per summary.
	Compact Format = "compact"

	// JSON prints an indented object keyed by profile then layer,
	// preserving request order.
	JSON Format = "json"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case Stacked:
		return Stacked, nil
	case Compact:
		return Compact, nil
	case JSON:
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q (available: stacked, compact, json)", ErrUnknownFormat, name)
}

// Render formats a result in the requested format.
func Render(res *summarize.Result, format Format) (string, error) {
	switch format {
	case Stacked:
		return renderStacked(res), nil
	case Compact:
		return renderCompact(res), nil
	case JSON:
		return renderJSON(res)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func renderStacked(res *summarize.Result) string {
	var lines []string
	for _, pr := range res.Profiles {
		lines = append(lines, fmt.Sprintf("=== %s ===", strings.ToUpper(pr.Profile.Name)))
		for _, lr := range pr.Layers {
			lines = append(lines, fmt.Sprintf("--- %s ---", titleCase(lr.Layer)))
			lines = append(lines, strings.TrimSpace(lr.Text))
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func renderCompact(res *summarize.Result) string {
	var lines []string
	for _, pr := range res.Profiles {
		for _, lr := range pr.Layers {
			lines = append(lines, fmt.Sprintf("%s.%s: %s", pr.Profile.Name, lr.Layer, lr.Text))
		}
	}
	return strings.Join(lines, "\n")
}

// renderJSON writes the nested profile→layer→text object by hand so
// key order follows the request instead of map iteration.
func renderJSON(res *summarize.Result) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, pr := range res.Profiles {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		if err := writeJSONString(&buf, pr.Profile.Name); err != nil {
			return "", err
		}
		buf.WriteString(": {")
		for j, lr := range pr.Layers {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n    ")
			if err := writeJSONString(&buf, lr.Layer); err != nil {
				return "", err
			}
			buf.WriteString(": ")
			if err := writeJSONString(&buf, lr.Text); err != nil {
				return "", err
			}
		}
		if len(pr.Layers) > 0 {
			buf.WriteString("\n  ")
		}
		buf.WriteString("}")
	}
	if len(res.Profiles) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}

// titleCase turns a layer name like "one_screen" into "One Screen".
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
