package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

// ParseOutPoint parses "txid:vout", where txid is in the byte-reversed display
// order used by block explorers and node RPC.
func ParseOutPoint(s string) (txcodec.OutPoint, error) {
	txid, vout, ok := strings.Cut(s, ":")
	if !ok {
		return txcodec.OutPoint{}, fmt.Errorf("outpoint %q: expected txid:vout", s)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return txcodec.OutPoint{}, fmt.Errorf("outpoint %q txid: %w", s, err)
	}
	if len(txid) != chainhash.MaxHashStringSize {
		return txcodec.OutPoint{}, fmt.Errorf("outpoint %q txid: expected %d hex characters", s, chainhash.MaxHashStringSize)
	}
	index, err := strconv.ParseUint(vout, 10, 32)
	if err != nil {
		return txcodec.OutPoint{}, fmt.Errorf("outpoint %q vout: %w", s, err)
	}
	return txcodec.OutPoint{TxID: *hash, Vout: uint32(index)}, nil
}

// FormatTxID renders a wire-order txid in display order.
func FormatTxID(txid [chainhash.HashSize]byte) string {
	return chainhash.Hash(txid).String()
}
