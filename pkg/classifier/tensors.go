package classifier

import (
	"encoding/binary"
	"encoding/json"
	"math"
)

// Tensor is a dense float32 tensor with row-major layout, the minimal
// shape this package needs from a tensor-blob artifact.
type Tensor struct {
	Shape []int
	Data  []float32
}

func (t Tensor) numel() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

type tensorHeaderEntry struct {
	Dtype       string `json:"dtype"`
	Shape       []int  `json:"shape"`
	DataOffsets [2]int `json:"data_offsets"`
}

// EncodeSafetensors serializes named tensors into a minimal
// safetensors-compatible blob: an 8-byte little-endian header length,
// a JSON header mapping tensor name to dtype/shape/byte-offsets, and
// the raw little-endian float32 tensor bytes concatenated in header
// iteration order.
func EncodeSafetensors(tensors map[string]Tensor) ([]byte, error) {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		names = append(names, name)
	}

	header := make(map[string]tensorHeaderEntry, len(names))
	var body []byte
	offset := 0
	for _, name := range names {
		t := tensors[name]
		size := t.numel() * 4
		header[name] = tensorHeaderEntry{
			Dtype:       "F32",
			Shape:       t.Shape,
			DataOffsets: [2]int{offset, offset + size},
		}
		buf := make([]byte, size)
		for i, f := range t.Data {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
		}
		body = append(body, buf...)
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 8+len(headerJSON)+len(body))
	binary.LittleEndian.PutUint64(out[:8], uint64(len(headerJSON)))
	copy(out[8:], headerJSON)
	copy(out[8+len(headerJSON):], body)
	return out, nil
}

// DecodeSafetensors parses a blob produced by EncodeSafetensors (or any
// safetensors file restricted to F32 tensors).
func DecodeSafetensors(blob []byte) (map[string]Tensor, error) {
	if len(blob) < 8 {
		return nil, newError(KindModel, "", "safetensors blob shorter than header length prefix", nil)
	}
	headerLen := binary.LittleEndian.Uint64(blob[:8])
	if 8+headerLen > uint64(len(blob)) {
		return nil, newError(KindModel, "", "safetensors header length exceeds blob size", nil)
	}

	var header map[string]tensorHeaderEntry
	if err := json.Unmarshal(blob[8:8+headerLen], &header); err != nil {
		return nil, newError(KindModel, "", "cannot parse safetensors header", err)
	}

	body := blob[8+headerLen:]
	tensors := make(map[string]Tensor, len(header))
	for name, entry := range header {
		start, end := entry.DataOffsets[0], entry.DataOffsets[1]
		if start < 0 || end > len(body) || end < start {
			return nil, newError(KindModel, name, "tensor data offsets out of range", nil)
		}
		raw := body[start:end]
		data := make([]float32, len(raw)/4)
		for i := range data {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			data[i] = math.Float32frombits(bits)
		}
		tensors[name] = Tensor{Shape: entry.Shape, Data: data}
	}
	return tensors, nil
}
