// Package model defines the archive records derived from decoded legacy
// transactions.
package model

import "time"

// Transaction is one archived legacy transaction together with its
// canonical encoding.
type Transaction struct {
	Coin        Coin
	Network     Network
	TxID        string
	IngestedAt  time.Time
	Size        uint32
	Version     int32
	LockTime    uint32
	InputCount  uint32
	OutputCount uint32
	RawHex      string
}

// TransactionInput is an archived input and the outpoint it spends.
type TransactionInput struct {
	Coin         Coin
	Network      Network
	TxID         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	Sequence     uint32
	IsCoinbase   bool
	ScriptSigHex string
}

// TransactionOutput is an archived output with the addresses its script pays to.
type TransactionOutput struct {
	Coin       Coin
	Network    Network
	TxID       string
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	Addresses  []string
}

// ArchiveBatch groups a decoded transaction with its inputs and outputs for
// batch insertion.
type ArchiveBatch struct {
	Tx      Transaction
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}
