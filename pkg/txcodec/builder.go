package txcodec

import "slices"

// DefaultVersion is the version a new Builder starts with.
const DefaultVersion int32 = 1

// Builder assembles a LegacyTransaction. Every method returns a new Builder
// and never writes to storage shared with the receiver, so intermediate
// builders can be reused freely.
type Builder struct {
	version  int32
	inputs   []TxInput
	outputs  []TxOutput
	lockTime uint32
}

// NewBuilder returns a Builder for version 1 with no inputs, no outputs and a
// zero lock time.
func NewBuilder() Builder {
	return Builder{version: DefaultVersion}
}

// From returns a Builder seeded with a copy of tx.
func From(tx LegacyTransaction) Builder {
	b := Builder{version: tx.Version, lockTime: tx.LockTime}
	for _, in := range tx.Inputs {
		b.inputs = append(b.inputs, cloneInput(in))
	}
	for _, out := range tx.Outputs {
		b.outputs = append(b.outputs, cloneOutput(out))
	}
	return b
}

// Version sets the transaction version.
func (b Builder) Version(version int32) Builder {
	b.version = version
	return b
}

// AddInput appends one input.
func (b Builder) AddInput(in TxInput) Builder {
	b.inputs = append(slices.Clip(b.inputs), cloneInput(in))
	return b
}

// AddOutput appends one output.
func (b Builder) AddOutput(out TxOutput) Builder {
	b.outputs = append(slices.Clip(b.outputs), cloneOutput(out))
	return b
}

// LockTime sets the lock time.
func (b Builder) LockTime(lockTime uint32) Builder {
	b.lockTime = lockTime
	return b
}

// Build returns the finished transaction. The result shares no memory with
// the builder.
func (b Builder) Build() LegacyTransaction {
	tx := LegacyTransaction{
		Version:  b.version,
		Inputs:   make([]TxInput, 0, len(b.inputs)),
		Outputs:  make([]TxOutput, 0, len(b.outputs)),
		LockTime: b.lockTime,
	}
	for _, in := range b.inputs {
		tx.Inputs = append(tx.Inputs, cloneInput(in))
	}
	for _, out := range b.outputs {
		tx.Outputs = append(tx.Outputs, cloneOutput(out))
	}
	return tx
}
