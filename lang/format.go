package lang

//go:generate go tool stringer --linecomment --type OutputFormat --output format_string.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
)

// Batch is a program submitted as a document, in JSON or YAML:
//
//	{"expressions": ["(set x 5)", "(puts x)"]}
type Batch struct {
	Expressions []string `json:"expressions" yaml:"expressions"`
}

// DecodeBatch decodes a [Batch] from r. JSON input is accepted as YAML.
// Unknown fields are rejected, and empty input is an empty batch.
func DecodeBatch(ctx context.Context, r io.Reader) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, ErrReadInput.Wrap(err)
	}

	var b Batch

	if len(bytes.TrimSpace(data)) == 0 {
		return b, nil
	}

	if err := yaml.UnmarshalContext(ctx, data, &b, yaml.DisallowUnknownField()); err != nil {
		return Batch{}, ErrReadInput.Wrap(err)
	}

	return b, nil
}

// Result is the document form of an [Output].
type Result struct {
	Output Output `json:"output" yaml:"output"`
}

// OutputFormat selects how an [Output] is written.
type OutputFormat uint8

const (
	OutputLines OutputFormat = iota // lines
	OutputJSON                      // json
	OutputYAML                      // yaml
)

// OutputFormats returns the names of all output formats.
func OutputFormats() []string {
	return []string{OutputLines.String(), OutputJSON.String(), OutputYAML.String()}
}

// ParseOutputFormat parses an output format name, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range []OutputFormat{OutputLines, OutputJSON, OutputYAML} {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}

	return 0, ErrInvalidOption.With(slog.String("output", s))
}

// Format writes o to w. Lines writes one entry per line. JSON and YAML write
// a [Result] document.
func (o Output) Format(ctx context.Context, w io.Writer, format OutputFormat) error {
	if o == nil {
		o = Output{}
	}

	switch format {
	case OutputLines:
		for _, s := range o {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}

		return nil

	case OutputJSON:
		return json.NewEncoder(w).Encode(Result{Output: o})

	case OutputYAML:
		data, err := yaml.MarshalContext(ctx, Result{Output: o}, yaml.Indent(2))
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err
	}

	return ErrInvalidOption.With(slog.String("output", format.String()))
}
