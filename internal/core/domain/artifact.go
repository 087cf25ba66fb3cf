package domain

import "encoding/json"

// Artifact is the compiled result of a file, as stored in the artifact cache.
type Artifact struct {
	Code      string          `cbor:"1,keyasint" json:"code"`
	SourceMap json.RawMessage `cbor:"2,keyasint" json:"map,omitempty"`
	Size      int64           `cbor:"3,keyasint" json:"-"`
	Bare      bool            `cbor:"4,keyasint" json:"bare,omitempty"`
}

// NewArtifact returns an artifact with its byte size computed from code and map.
func NewArtifact(code string, sourceMap json.RawMessage) *Artifact {
	a := &Artifact{Code: code, SourceMap: sourceMap}
	a.Size = a.ComputeSize()
	return a
}

// ComputeSize returns the number of bytes the artifact accounts for in a cache budget.
func (a *Artifact) ComputeSize() int64 {
	return int64(len(a.Code) + len(a.SourceMap))
}

// Transpiled is the intermediate result of an alternate syntax compiler.
type Transpiled struct {
	Source    string
	SourceMap json.RawMessage
	Bare      bool
}

// Output is the compiled file handed back to the host.
type Output struct {
	Path       string          `json:"path"`
	SourcePath string          `json:"sourcePath"`
	Data       string          `json:"data"`
	SourceMap  json.RawMessage `json:"sourceMap,omitempty"`
	Bare       bool            `json:"bare,omitempty"`
}
