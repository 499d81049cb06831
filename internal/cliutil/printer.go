package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Printer prints a list of values.
type Printer[T any] interface {
	Print([]T) error
	Flush()
}

type tablePrinter[T any] struct {
	header  []string
	rowFunc func(T) []string
	writer  *tabwriter.Writer
}

// NewTablePrinter prints one aligned row per value under header.
func NewTablePrinter[T any](w io.Writer, header []string, rowFunc func(T) []string) Printer[T] {
	return &tablePrinter[T]{
		header:  header,
		rowFunc: rowFunc,
		writer:  tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
	}
}

func (p *tablePrinter[T]) Print(items []T) error {
	fmt.Fprintln(p.writer, strings.Join(p.header, "\t"))

	for _, item := range items {
		fmt.Fprintln(p.writer, strings.Join(p.rowFunc(item), "\t"))
	}

	return nil
}

func (p *tablePrinter[T]) Flush() {
	p.writer.Flush()
}

type jsonPrinter[T any] struct {
	encoder *json.Encoder
}

// NewJSONPrinter outputs values as JSON.
func NewJSONPrinter[T any](w io.Writer) Printer[T] {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return &jsonPrinter[T]{
		encoder: encoder,
	}
}

func (p *jsonPrinter[T]) Print(items []T) error {
	if items == nil {
		items = []T{}
	}
	return p.encoder.Encode(items)
}

func (p *jsonPrinter[T]) Flush() {}
