package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// NBT tag IDs, per the binary format. Only the tags the chunk encoder
// emits are defined.
const (
	tagEnd       byte = 0
	tagByte      byte = 1
	tagInt       byte = 3
	tagLong      byte = 4
	tagString    byte = 8
	tagList      byte = 9
	tagCompound  byte = 10
	tagLongArray byte = 12
)

// nbtWriter builds a big-endian NBT document. Errors are sticky: the first
// failure poisons the writer and every later call becomes a no-op.
type nbtWriter struct {
	buf bytes.Buffer
	err error
}

func (w *nbtWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

func (w *nbtWriter) writeRaw(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.buf.Write(p)
}

func (w *nbtWriter) writeTagHeader(id byte, name string) {
	if w.err != nil {
		return
	}
	if len(name) > math.MaxUint16 {
		w.err = fmt.Errorf("nbt: tag name too long (%d bytes)", len(name))
		return
	}
	w.buf.WriteByte(id)
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(name)))
	w.writeRaw(l[:])
	w.buf.WriteString(name)
}

// beginCompound opens a named compound tag. Every beginCompound must be
// matched by endCompound.
func (w *nbtWriter) beginCompound(name string) {
	w.writeTagHeader(tagCompound, name)
}

func (w *nbtWriter) endCompound() {
	if w.err != nil {
		return
	}
	w.buf.WriteByte(tagEnd)
}

func (w *nbtWriter) writeByteTag(name string, v int8) {
	w.writeTagHeader(tagByte, name)
	if w.err != nil {
		return
	}
	w.buf.WriteByte(byte(v))
}

func (w *nbtWriter) writeIntTag(name string, v int32) {
	w.writeTagHeader(tagInt, name)
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], uint32(v))
	w.writeRaw(p[:])
}

func (w *nbtWriter) writeLongTag(name string, v int64) {
	w.writeTagHeader(tagLong, name)
	var p [8]byte
	binary.BigEndian.PutUint64(p[:], uint64(v))
	w.writeRaw(p[:])
}

func (w *nbtWriter) writeStringTag(name, v string) {
	w.writeTagHeader(tagString, name)
	if w.err != nil {
		return
	}
	if len(v) > math.MaxUint16 {
		w.err = fmt.Errorf("nbt: string too long (%d bytes)", len(v))
		return
	}
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(v)))
	w.writeRaw(l[:])
	w.buf.WriteString(v)
}

func (w *nbtWriter) writeLongArrayTag(name string, v []int64) {
	w.writeTagHeader(tagLongArray, name)
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(v)))
	w.writeRaw(n[:])
	for _, x := range v {
		var p [8]byte
		binary.BigEndian.PutUint64(p[:], uint64(x))
		w.writeRaw(p[:])
	}
}

// beginList opens a named list of n elements of the given tag type. List
// elements are written payload-only: for compound elements, write the
// member tags and close each element with endCompound.
func (w *nbtWriter) beginList(name string, elem byte, n int) {
	w.writeTagHeader(tagList, name)
	if w.err != nil {
		return
	}
	w.buf.WriteByte(elem)
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], uint32(n))
	w.writeRaw(p[:])
}
