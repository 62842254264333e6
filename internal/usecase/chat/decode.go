package chat

import "unicode/utf8"

// chunkDecoder decodes a byte stream into text chunk by chunk, carrying
// partial UTF-8 sequences across chunk boundaries so a multi-byte character
// split between two chunks decodes to exactly one character.
type chunkDecoder struct {
	carry []byte
}

// decode returns the decodable prefix of carry+p and retains any trailing
// incomplete sequence for the next call. At most utf8.UTFMax-1 bytes are ever
// carried; byte sequences that are invalid outright pass through unchanged.
func (d *chunkDecoder) decode(p []byte) string {
	buf := p
	if len(d.carry) > 0 {
		buf = append(d.carry, p...)
		d.carry = nil
	}

	cut := len(buf)
	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buf[i]) {
			continue
		}
		if !utf8.FullRune(buf[i:]) {
			cut = i
		}
		break
	}

	if cut < len(buf) {
		d.carry = append([]byte(nil), buf[cut:]...)
	}
	return string(buf[:cut])
}

// flush returns any bytes still held as carry. Called at end of stream so a
// truncated trailing sequence is not silently dropped.
func (d *chunkDecoder) flush() string {
	if len(d.carry) == 0 {
		return ""
	}
	out := string(d.carry)
	d.carry = nil
	return out
}
