package csvimport

import (
	"context"
	"fmt"
	"io"
)

// ProcessResult holds the outcome of a single-pass CSV import run
type ProcessResult struct {
	TotalRows   int        `json:"total_rows"`
	ValidRows   int        `json:"valid_rows"`
	ErrorRows   int        `json:"error_rows"`
	Errors      []RowError `json:"errors,omitempty"`
	IsTruncated bool       `json:"is_truncated,omitempty"`
	TotalErrors int        `json:"total_errors,omitempty"`

	// Rows holds the rows that passed validation, in file order
	Rows []*Row `json:"-"`
}

// IsValid returns true if no row failed validation
func (r *ProcessResult) IsValid() bool {
	return r.ErrorRows == 0
}

// ImportProcessor parses and validates a CSV stream in a single pass
type ImportProcessor struct {
	maxFileSize int64
	maxRows     int
	maxErrors   int
}

// ProcessorOption is a functional option for ImportProcessor
type ProcessorOption func(*ImportProcessor)

// WithMaxFileSize sets the maximum file size
func WithMaxFileSize(size int64) ProcessorOption {
	return func(p *ImportProcessor) {
		p.maxFileSize = size
	}
}

// WithMaxRows sets the maximum number of rows
func WithMaxRows(rows int) ProcessorOption {
	return func(p *ImportProcessor) {
		p.maxRows = rows
	}
}

// WithMaxErrors sets the maximum number of errors to collect
func WithMaxErrors(errors int) ProcessorOption {
	return func(p *ImportProcessor) {
		p.maxErrors = errors
	}
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(opts ...ProcessorOption) *ImportProcessor {
	p := &ImportProcessor{
		maxFileSize: 10 * 1024 * 1024, // 10MB default
		maxRows:     10000,            // 10K rows default
		maxErrors:   100,              // 100 errors default
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// MaxFileSize returns the configured file size limit
func (p *ImportProcessor) MaxFileSize() int64 {
	return p.maxFileSize
}

// Process reads the CSV, checks required headers and validates every row.
// Rows that pass validation are collected in the result; rows that fail
// are counted and described in the error list.
func (p *ImportProcessor) Process(ctx context.Context, reader io.Reader, requiredHeaders []string, rules []FieldRule) (*ProcessResult, error) {
	parser, err := NewCSVParser(reader)
	if err != nil {
		return nil, err
	}

	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}

	if missing := parser.ValidateHeaders(requiredHeaders); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %v", ErrMissingHeader, missing)
	}

	validator := NewFieldValidator(rules, p.maxErrors)
	parseErrors := NewErrorCollection(p.maxErrors)
	result := &ProcessResult{}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := parser.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrors.Add(NewRowError(parser.CurrentRow(), "", ErrCodeImportCSVParsing, err.Error()))
			result.ErrorRows++
			continue
		}

		if row.IsEmpty() {
			continue
		}

		result.TotalRows++
		if result.TotalRows > p.maxRows {
			parseErrors.Add(NewRowError(row.LineNumber, "", ErrCodeImportValidation,
				"exceeded maximum number of rows"))
			break
		}

		if validator.ValidateRow(row) {
			result.ValidRows++
			result.Rows = append(result.Rows, row)
		} else {
			result.ErrorRows++
		}
	}

	allErrors := NewErrorCollection(p.maxErrors)
	for _, e := range parseErrors.Errors() {
		allErrors.Add(e)
	}
	for _, e := range validator.Errors().Errors() {
		allErrors.Add(e)
	}

	result.Errors = allErrors.Errors()
	result.IsTruncated = allErrors.IsTruncated()
	result.TotalErrors = allErrors.TotalCount()

	return result, nil
}
