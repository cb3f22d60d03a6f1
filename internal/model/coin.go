package model

// Coin identifies the chain a transaction belongs to.
type Coin string

// Network names a chain network such as mainnet or testnet.
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
