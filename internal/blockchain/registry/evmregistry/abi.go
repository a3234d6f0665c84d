package evmregistry

// Hand-trimmed ABI fragments: only the registry surface this layer consumes.

const mapABI = `[
	{"type":"function","name":"getStorageContract","stateMutability":"view",
	 "inputs":[{"name":"ID","type":"uint256"},{"name":"rwaType","type":"uint256"},{"name":"version","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"},{"name":"","type":"address"}]}
]`

const storageABI = `[
	{"type":"function","name":"greenfieldBucket","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"greenfieldObject","stateMutability":"view",
	 "inputs":[{"name":"uriType","type":"uint8"},{"name":"slot","type":"uint256"}],
	 "outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"getURIHash","stateMutability":"view",
	 "inputs":[{"name":"uriDataHash","type":"bytes32"}],
	 "outputs":[
		{"name":"uriCategory","type":"uint8"},
		{"name":"uriType","type":"uint8"},
		{"name":"title","type":"string"},
		{"name":"slot","type":"uint256"},
		{"name":"objectName","type":"string"},
		{"name":"uriHash","type":"bytes32"},
		{"name":"timeStamp","type":"uint256"}]},
	{"type":"function","name":"getURIHashCount","stateMutability":"view",
	 "inputs":[{"name":"uriCategory","type":"uint8"},{"name":"uriType","type":"uint8"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"existURIHash","stateMutability":"view",
	 "inputs":[{"name":"uriDataHash","type":"bytes32"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"tokenAdmin","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"address"}]}
]`

const storageManagerABI = `[
	{"type":"function","name":"addURI","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"ID","type":"uint256"},
		{"name":"uriCategory","type":"uint8"},
		{"name":"uriType","type":"uint8"},
		{"name":"title","type":"string"},
		{"name":"slot","type":"uint256"},
		{"name":"uriDataHash","type":"bytes32"},
		{"name":"chainIdsStr","type":"string[]"},
		{"name":"feeToken","type":"address"}],
	 "outputs":[]}
]`
