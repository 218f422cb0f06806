package domain

const (
	ContractName    = "crates.io:terra-trashtalk"
	ContractVersion = "0.1.0"
)

// ContractInfo records which code created the stored board.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func CurrentContractInfo() ContractInfo {
	return ContractInfo{Contract: ContractName, Version: ContractVersion}
}
