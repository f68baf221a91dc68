package workload

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// requestWidth is the on-disk size of one request: a signed 32-bit integer.
const requestWidth = 4

// ByteOrders maps accepted byte-order names to their encoding.
var ByteOrders = map[string]binary.ByteOrder{
	"":       binary.LittleEndian, // empty defaults to little-endian
	"little": binary.LittleEndian,
	"big":    binary.BigEndian,
}

// ParseByteOrder resolves a byte-order name.
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	order, ok := ByteOrders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown byte order %q; valid: little, big", name)
	}
	return order, nil
}

// LoadBinaryRequests reads a whole request file as one batch of signed
// 32-bit cylinder numbers. Range checks are left to sim.NewRequestSet.
func LoadBinaryRequests(path string, order binary.ByteOrder) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("request file %s is empty", path)
	}
	if len(data)%requestWidth != 0 {
		return nil, fmt.Errorf("request file %s: size %d is not a multiple of %d bytes", path, len(data), requestWidth)
	}

	raw := make([]int32, len(data)/requestWidth)
	if err := binary.Read(bytes.NewReader(data), order, raw); err != nil {
		return nil, fmt.Errorf("decoding request file: %w", err)
	}
	cylinders := make([]int, len(raw))
	for i, v := range raw {
		cylinders[i] = int(v)
	}
	return cylinders, nil
}

// WriteBinaryRequests writes cylinders as signed 32-bit integers.
func WriteBinaryRequests(path string, cylinders []int, order binary.ByteOrder) error {
	raw := make([]int32, len(cylinders))
	for i, c := range cylinders {
		raw[i] = int32(c)
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, order, raw); err != nil {
		return fmt.Errorf("encoding requests: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating request directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing request file: %w", err)
	}
	return nil
}

// LoadRequests picks a loader from the file extension: .yaml/.yml files are
// request lists, anything else is a binary batch.
func LoadRequests(path string, order binary.ByteOrder) ([]int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err := LoadRequestSpec(path)
		if err != nil {
			return nil, err
		}
		return spec.Requests, nil
	default:
		return LoadBinaryRequests(path, order)
	}
}
