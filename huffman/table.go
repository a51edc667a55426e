package huffman

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/gocarina/gocsv"

	"github.com/dargueta/squash"
)

// tableRecord is the CSV row format for one code table entry. Symbols are
// stored literally; encoding/csv quoting (via gocsv) takes care of commas,
// quotes and newlines in the symbol column.
type tableRecord struct {
	Symbol string `csv:"symbol"`
	Code   string `csv:"code"`
}

// WriteTable serializes a code table as CSV, one symbol per row, sorted by
// symbol so output is stable across runs.
func WriteTable(output io.Writer, table CodeTable) error {
	symbols := make([]rune, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	records := make([]tableRecord, len(symbols))
	for i, symbol := range symbols {
		records[i] = tableRecord{Symbol: string(symbol), Code: table[symbol]}
	}
	return gocsv.Marshal(&records, output)
}

// ReadTable deserializes a code table written by [WriteTable]. Rows whose
// symbol column isn't exactly one character, rows with duplicate symbols,
// and codes containing anything but '0' and '1' are rejected.
func ReadTable(input io.Reader) (CodeTable, error) {
	var records []tableRecord
	if err := gocsv.Unmarshal(input, &records); err != nil {
		return nil, squash.ErrMalformedInput.Wrap(err)
	}

	table := make(CodeTable, len(records))
	for _, record := range records {
		symbol, size := utf8.DecodeRuneInString(record.Symbol)
		if symbol == utf8.RuneError || size != len(record.Symbol) {
			return nil, squash.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol column %q is not a single character", record.Symbol))
		}
		if _, seen := table[symbol]; seen {
			return nil, squash.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol %q appears twice", symbol))
		}
		if record.Code == "" {
			return nil, squash.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol %q has an empty code", symbol))
		}
		for i := 0; i < len(record.Code); i++ {
			if record.Code[i] != '0' && record.Code[i] != '1' {
				return nil, squash.ErrMalformedInput.WithMessage(
					fmt.Sprintf("code for symbol %q contains %q", symbol, record.Code[i]))
			}
		}
		table[symbol] = record.Code
	}
	return table, nil
}
