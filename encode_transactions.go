package ecotrack

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// The transaction journal is a JSONL stream: one transaction per line, in
// the same layout as in snapshots. It is easy to read, to append to, and to
// merge with other tools.

// EncodeTransactions writes txs to w, one per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	enc := json.NewEncoder(w)
	for _, tx := range txs {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("could not encode transaction %d: %w", tx.ID, err)
		}
	}
	return nil
}

// DecodeTransactions reads a transaction journal. Blank lines are skipped.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(b, &tx); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalid, line, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
