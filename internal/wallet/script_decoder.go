package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/legacytx/internal/model"
)

// ScriptDecoder converts between addresses and output scripts for one network.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder using params of the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// ScriptClass names the standard template script matches, e.g. "pubkeyhash".
func (d *ScriptDecoder) ScriptClass(script []byte) string {
	return txscript.GetScriptClass(script).String()
}

// Addresses extracts the addresses a script pays to. Non-standard scripts
// yield no addresses and no error.
func (d *ScriptDecoder) Addresses(script []byte) ([]string, error) {
	if len(script) == 0 {
		return nil, nil
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, nil
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}

// PayToAddress returns the output script paying to address.
func (d *ScriptDecoder) PayToAddress(address string) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, d.params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	if !addr.IsForNet(d.params) {
		return nil, fmt.Errorf("address %q is not valid on %s", address, d.params.Name)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("build script for %q: %w", address, err)
	}
	return script, nil
}
