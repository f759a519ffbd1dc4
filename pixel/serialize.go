/*
	This file supports serialization/deserialization and compression of
	pixel arrays for storage and interchange.
*/

package pixel

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
)

// Compression is the format of compression for stored pixel data.
// NOTE: Should be no more than 8 (3 bits) of compression types.
type Compression uint8

const (
	Uncompressed Compression = 0
	Snappy                   = 1 << iota
	Gzip
)

func (compress Compression) String() string {
	switch compress {
	case Uncompressed:
		return "No compression"
	case Snappy:
		return "Go Snappy compression"
	case Gzip:
		return "Gzip compression"
	default:
		return "Unknown compression"
	}
}

// Checksum is the type of checksum employed for error checking stored
// data.  NOTE: Should be no more than 4 (2 bits) of checksum types.
type Checksum uint8

const (
	NoChecksum Checksum = 0
	CRC32               = 1 << iota
)

func (checksum Checksum) String() string {
	switch checksum {
	case NoChecksum:
		return "No checksum"
	case CRC32:
		return "CRC32 checksum"
	default:
		return "Unknown checksum"
	}
}

// SerializationFormat is a single byte combining both compression and
// checksum methods.
type SerializationFormat uint8

func EncodeSerializationFormat(compress Compression, checksum Checksum) SerializationFormat {
	a := (uint8(compress) & 0x07) << 5
	b := (uint8(checksum) & 0x03) << 3
	return SerializationFormat(a | b)
}

func DecodeSerializationFormat(s SerializationFormat) (compress Compression, checksum Checksum) {
	compress = Compression(uint8(s) >> 5)
	checksum = Checksum((uint8(s) >> 3) & 0x03)
	return
}

// SerializeData frames a slice of bytes using optional compression and
// checksum.
func SerializeData(data []byte, compress Compression, checksum Checksum) (s []byte, err error) {
	var buffer bytes.Buffer

	// Store the requested compression and checksum
	format := EncodeSerializationFormat(compress, checksum)
	if err = binary.Write(&buffer, binary.LittleEndian, format); err != nil {
		return
	}

	// Handle compression if requested
	var byteData []byte
	switch compress {
	case Uncompressed:
		byteData = data
	case Snappy:
		byteData = snappy.Encode(nil, data)
	case Gzip:
		var gzBuf bytes.Buffer
		gz := gzip.NewWriter(&gzBuf)
		if _, err = gz.Write(data); err != nil {
			return
		}
		if err = gz.Close(); err != nil {
			return
		}
		byteData = gzBuf.Bytes()
	default:
		err = fmt.Errorf("illegal compression (%s) during serialization", compress)
	}
	if err != nil {
		return
	}

	// Handle checksum if requested
	switch checksum {
	case NoChecksum:
	case CRC32:
		crcChecksum := crc32.ChecksumIEEE(byteData)
		err = binary.Write(&buffer, binary.LittleEndian, crcChecksum)
	default:
		err = fmt.Errorf("illegal checksum (%s) in SerializeData()", checksum)
	}
	if err == nil {
		// Note the actual data is written last, after any checksum so we
		// don't have to worry about length when deserializing.
		_, err = buffer.Write(byteData)
		if err == nil {
			s = buffer.Bytes()
		}
	}
	return
}

// DeserializeData unframes a slice of bytes using stored compression
// and checksum.
func DeserializeData(s []byte) (data []byte, compress Compression, err error) {
	buffer := bytes.NewBuffer(s)

	// Get the stored compression and checksum
	var format SerializationFormat
	if err = binary.Read(buffer, binary.LittleEndian, &format); err != nil {
		return
	}
	var checksum Checksum
	compress, checksum = DecodeSerializationFormat(format)

	// Get any checksum.
	var storedCrc32 uint32
	switch checksum {
	case NoChecksum:
	case CRC32:
		err = binary.Read(buffer, binary.LittleEndian, &storedCrc32)
	default:
		err = fmt.Errorf("illegal checksum in deserializing data")
	}
	if err != nil {
		return
	}

	// Get the possibly compressed data.
	cdata := buffer.Bytes()

	// Perform any requested checksum
	if checksum == CRC32 {
		crcChecksum := crc32.ChecksumIEEE(cdata)
		if crcChecksum != storedCrc32 {
			err = fmt.Errorf("bad checksum: stored %x got %x", storedCrc32, crcChecksum)
			return
		}
	}

	switch compress {
	case Uncompressed:
		data = cdata
	case Snappy:
		data, err = snappy.Decode(nil, cdata)
	case Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(bytes.NewReader(cdata)); err != nil {
			return
		}
		data, err = io.ReadAll(gz)
		if err == nil {
			err = gz.Close()
		}
	default:
		err = fmt.Errorf("illegal compression format (%d) in deserialization", compress)
	}
	return
}

// MarshalBinary fulfills the encoding.BinaryMarshaler interface: four
// little-endian int32 axis sizes followed by the float64 values.
func (p *PixelArray) MarshalBinary() ([]byte, error) {
	out := make([]byte, 16+8*len(p.data))
	for i, size := range p.dims {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(size))
	}
	pos := 16
	for _, v := range p.data {
		binary.LittleEndian.PutUint64(out[pos:], math.Float64bits(v))
		pos += 8
	}
	return out, nil
}

// UnmarshalBinary fulfills the encoding.BinaryUnmarshaler interface.
func (p *PixelArray) UnmarshalBinary(b []byte) error {
	if len(b) < 16 {
		return fmt.Errorf("%w: %d bytes is too short for a pixel array header", ErrIncompatibleDimensions, len(b))
	}
	var dims Dims
	for i := range dims {
		dims[i] = int32(binary.LittleEndian.Uint32(b[4*i:]))
	}
	if err := dims.Validate(); err != nil {
		return err
	}
	want := 16 + 8*dims.NumVoxels()
	if int64(len(b)) != want {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrIncompatibleDimensions, dims, want, len(b))
	}
	data := make([]float64, dims.NumVoxels())
	pos := 16
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[pos:]))
		pos += 8
	}
	p.dims = dims
	p.data = data
	return nil
}

// Serialize writes optionally compressed and checksummed bytes
// representing the pixel array.
func (p *PixelArray) Serialize(compress Compression, checksum Checksum) ([]byte, error) {
	b, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return SerializeData(b, compress, checksum)
}

// Deserialize reads a pixel array from a possibly compressed,
// checksummed byte slice.
func (p *PixelArray) Deserialize(b []byte) error {
	if p == nil {
		return fmt.Errorf("attempted to deserialize into nil PixelArray")
	}
	data, _, err := DeserializeData(b)
	if err != nil {
		return err
	}
	return p.UnmarshalBinary(data)
}
