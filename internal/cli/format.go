// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/cropwise/internal/recommend"
)

// Format is an output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats lists the accepted --format values.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// ParseFormat normalizes s and rejects unknown formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported: %s)", s, strings.Join(SupportedFormats(), ", "))
	}
	return f, nil
}

// RankedCrop is one line of recommend output.
type RankedCrop struct {
	Rank        int     `json:"rank" yaml:"rank"`
	Crop        string  `json:"crop" yaml:"crop"`
	Score       float64 `json:"score" yaml:"score"`
	Image       string  `json:"image" yaml:"image"`
	Description string  `json:"description" yaml:"description"`
}

// tabular is implemented by results that have a table rendering.
type tabular interface {
	header() []string
	rows(displayName func(string) string) [][]string
}

// Ranking is the result of the recommend command.
type Ranking []RankedCrop

func (Ranking) header() []string {
	return []string{"RANK", "CROP", "SCORE", "DESCRIPTION"}
}

func (r Ranking) rows(displayName func(string) string) [][]string {
	out := make([][]string, 0, len(r))
	for _, c := range r {
		out = append(out, []string{
			strconv.Itoa(c.Rank),
			displayName(c.Crop),
			strconv.FormatFloat(c.Score, 'f', 2, 64),
			c.Description,
		})
	}
	return out
}

// CropList is the result of the crops command.
type CropList []recommend.CropCount

func (CropList) header() []string {
	return []string{"CROP", "ROWS"}
}

func (l CropList) rows(displayName func(string) string) [][]string {
	out := make([][]string, 0, len(l))
	for _, c := range l {
		out = append(out, []string{displayName(c.Crop), strconv.Itoa(c.Rows)})
	}
	return out
}

// Writer renders command results in one format.
type Writer struct {
	format Format
	output io.Writer
	title  cases.Caser
}

// NewWriter returns a Writer for format. Unknown formats fall back to table.
func NewWriter(format Format, output io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatTable
	}
	return &Writer{
		format: format,
		output: output,
		title:  cases.Title(language.English),
	}
}

// Write renders v. Only values with a table form may use FormatTable.
func (w *Writer) Write(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return enc.Close()
	default:
		t, ok := v.(tabular)
		if !ok {
			return fmt.Errorf("%T has no table form", v)
		}
		return w.writeTable(t)
	}
}

func (w *Writer) writeTable(t tabular) error {
	rows := t.rows(w.displayName)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.output, "<empty>")
		return err
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.header(), "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// displayName turns a dataset label such as "kidneybeans" or "pigeon_peas"
// into a title-cased name for terminals.
func (w *Writer) displayName(crop string) string {
	return w.title.String(strings.ReplaceAll(crop, "_", " "))
}
