package broodrep

import "encoding/binary"

// appendBlockSection appends one section's framing to dst: a u32 claimed
// decompressed size, a u32 block count, then each block as (u32 compressed
// size, bytes). This is the shared framing used by Legacy, Modern118, and
// custom sections alike; only the codec applied to each block's bytes
// differs by variant.
func appendBlockSection(dst []byte, claimed uint32, blocks [][]byte) []byte {
	hdr := make([]byte, 8)
	binary.LittleEndian.PutUint32(hdr[0:4], claimed)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(blocks)))
	dst = append(dst, hdr...)

	for _, b := range blocks {
		sizeBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(sizeBuf, uint32(len(b)))
		dst = append(dst, sizeBuf...)
		dst = append(dst, b...)
	}
	return dst
}

func appendCustomSection(dst []byte, id uint32, claimed uint32, blocks [][]byte) []byte {
	idBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(idBuf, id)
	dst = append(dst, idBuf...)
	return appendBlockSection(dst, claimed, blocks)
}
