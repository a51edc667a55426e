// Package huffman implements frequency-driven prefix coding over text.
//
// Compress derives a code table from the input's symbol frequencies and
// returns it alongside the encoded bit string. The table is the decode key:
// it is not recoverable from the bit string alone and must travel with it
// (see [WriteTable] and [ReadTable] for a persistent form).
//
// Tree construction pops the two lowest-frequency nodes from a min-heap and
// merges them until one root remains. Ties between equal frequencies are
// broken by insertion order (original symbols in order of first appearance
// in the input, then merged nodes in order of creation), so a given input
// always produces the same table.
package huffman

import (
	"fmt"
	"strings"

	"github.com/dargueta/squash"
	"github.com/dargueta/squash/internal/heap"
)

// CodeTable maps each symbol to its prefix-free bit string.
type CodeTable map[rune]string

type node struct {
	// symbol is only meaningful on leaves.
	symbol rune
	leaf   bool
	freq   int
	// seq breaks frequency ties deterministically.
	seq   int
	left  *node
	right *node
}

func nodeLess(a, b *node) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

// Compress encodes text with a Huffman code derived from its own symbol
// frequencies. It returns the encoded bit string and the code table needed
// to decode it. Empty input yields an empty bit string and an empty table.
func Compress(text string) (string, CodeTable) {
	table := buildTable(text)

	builder := strings.Builder{}
	for _, symbol := range text {
		builder.WriteString(table[symbol])
	}
	return builder.String(), table
}

// Decompress inverts [Compress], reading bits and emitting a symbol each
// time the accumulated bits match a code. The table must be prefix-free;
// tables produced by [Compress] always are. A table with duplicate codes,
// or a bit string that can't be resolved against the table, fails with an
// error rather than looping or guessing.
func Decompress(bits string, table CodeTable) (string, error) {
	decoder := make(map[string]rune, len(table))
	longestCode := 0
	for symbol, code := range table {
		if code == "" {
			return "", squash.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("symbol %q has an empty code", symbol))
		}
		if _, seen := decoder[code]; seen {
			return "", squash.ErrNotPrefixFree.WithMessage(
				fmt.Sprintf("code %q is assigned to two symbols", code))
		}
		decoder[code] = symbol
		if len(code) > longestCode {
			longestCode = len(code)
		}
	}

	builder := strings.Builder{}
	candidate := strings.Builder{}
	for i := 0; i < len(bits); i++ {
		bit := bits[i]
		if bit != '0' && bit != '1' {
			return "", squash.ErrMalformedInput.WithMessage(
				"bit string may only contain '0' and '1'")
		}
		candidate.WriteByte(bit)

		// Codes are prefix-free, so the first (shortest) match is the only
		// possible one.
		if symbol, ok := decoder[candidate.String()]; ok {
			builder.WriteRune(symbol)
			candidate.Reset()
			continue
		}
		if candidate.Len() >= longestCode {
			return "", squash.ErrUnknownCode.WithMessage(
				fmt.Sprintf("no code matches bits %q", candidate.String()))
		}
	}

	if candidate.Len() != 0 {
		return "", squash.ErrTruncatedInput.WithMessage(
			fmt.Sprintf("%d bits left over after the last full code", candidate.Len()))
	}
	return builder.String(), nil
}

// buildTable computes the code table for text, or an empty table for empty
// input.
func buildTable(text string) CodeTable {
	// Count frequencies, remembering each symbol's first appearance so the
	// build doesn't depend on map iteration order.
	frequencies := make(map[rune]int)
	order := make([]rune, 0, 16)
	for _, symbol := range text {
		if frequencies[symbol] == 0 {
			order = append(order, symbol)
		}
		frequencies[symbol]++
	}

	table := make(CodeTable, len(order))
	if len(order) == 0 {
		return table
	}

	nodes := make([]*node, 0, len(order))
	for seq, symbol := range order {
		heap.Push(&nodes, &node{
			symbol: symbol,
			leaf:   true,
			freq:   frequencies[symbol],
			seq:    seq,
		}, nodeLess)
	}

	nextSeq := len(order)
	for len(nodes) > 1 {
		left := heap.Pop(&nodes, nodeLess)
		right := heap.Pop(&nodes, nodeLess)
		heap.Push(&nodes, &node{
			freq:  left.freq + right.freq,
			seq:   nextSeq,
			left:  left,
			right: right,
		}, nodeLess)
		nextSeq++
	}

	root := nodes[0]
	if root.leaf {
		// One distinct symbol. The tree is a bare leaf and a tree walk
		// would assign it the empty string, which can't delimit anything.
		table[root.symbol] = "0"
		return table
	}

	assignCodes(root, "", table)
	return table
}

// assignCodes walks the tree depth-first, appending '0' on left edges and
// '1' on right edges, and records each leaf's accumulated code.
func assignCodes(n *node, prefix string, table CodeTable) {
	if n.leaf {
		table[n.symbol] = prefix
		return
	}
	assignCodes(n.left, prefix+"0", table)
	assignCodes(n.right, prefix+"1", table)
}
