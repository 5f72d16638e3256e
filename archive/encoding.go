package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/andreyvit/ifc"
	"github.com/vmihailenco/msgpack/v5"
)

// storedRecord is the value stored under a record's ID key. Attrs is the
// canonical text between the parentheses, so a stored record reparses
// through the same codec as a file.
type storedRecord struct {
	Keyword string `msgpack:"k"`
	Attrs   string `msgpack:"a"`
}

// docMeta is the catalog value of a stored document.
type docMeta struct {
	Header   ifc.Header `msgpack:"h"`
	Schema   string     `msgpack:"s"`
	Checksum uint64     `msgpack:"c"`
	Count    int        `msgpack:"n"`
	MaxID    ifc.ID     `msgpack:"m"`
	Size     int        `msgpack:"sz"`
	Updated  time.Time  `msgpack:"t"`
}

type bytesBuilder struct {
	Buf []byte
}

func (bb *bytesBuilder) Write(b []byte) (int, error) {
	bb.Buf = append(bb.Buf, b...)
	return len(b), nil
}

func encodeValue(buf []byte, v any) []byte {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&bb)
	enc.SetSortMapKeys(true)
	err := enc.Encode(v)
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode %T using MsgPack: %w", v, err))
	}
	return bb.Buf
}

func decodeValue(buf []byte, v any) error {
	var r bytes.Reader
	r.Reset(buf)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	err := dec.Decode(v)
	msgpack.PutDecoder(dec)
	if err != nil {
		return fmt.Errorf("failed to decode msgpack into %T: %w", v, err)
	}
	return nil
}

// recordKey sorts records by ID in bucket order.
func recordKey(id ifc.ID) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(id))
}

func decodeRecordKey(key []byte) (ifc.ID, error) {
	if len(key) != 8 {
		return 0, fmt.Errorf("invalid record key %x", key)
	}
	id := ifc.ID(binary.BigEndian.Uint64(key))
	if id == 0 || id > ifc.MaxID {
		return 0, fmt.Errorf("invalid record key %x", key)
	}
	return id, nil
}
