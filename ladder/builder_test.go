package ladder

import "bytes"

// payloadBuilder constructs synthetic decompressed payloads through the
// same Params the decoder reads, so the fixture corpus and the scan
// constants cannot drift apart.
type payloadBuilder struct {
	p   Params
	buf bytes.Buffer
}

func newPayloadBuilder() *payloadBuilder {
	return &payloadBuilder{p: DefaultParams()}
}

func (b *payloadBuilder) raw(bs ...byte) *payloadBuilder {
	b.buf.Write(bs)
	return b
}

// noise writes filler bytes that match no marker and no token shape.
func (b *payloadBuilder) noise(n int) *payloadBuilder {
	for i := 0; i < n; i++ {
		b.buf.WriteByte(0x00)
	}
	return b
}

// token writes a length-prefixed ASCII token.
func (b *payloadBuilder) token(s string) *payloadBuilder {
	b.buf.WriteByte(byte(len(s)))
	b.buf.WriteString(s)
	return b
}

// instr writes marker, type byte, zero separator, and the address token.
func (b *payloadBuilder) instr(op Op, addr string) *payloadBuilder {
	b.buf.Write(b.p.InstructionMarker)
	b.buf.WriteByte(byte(op))
	b.buf.WriteByte(0x00)
	b.token(addr)
	return b
}

// timer writes a timer instruction followed by its three numeric tokens.
func (b *payloadBuilder) timer(op Op, addr, base, preset, accum string) *payloadBuilder {
	b.instr(op, addr)
	b.token(base).token(preset).token(accum)
	return b
}

func (b *payloadBuilder) counter(op Op, addr, preset, accum string) *payloadBuilder {
	b.instr(op, addr)
	b.token(preset).token(accum)
	return b
}

func (b *payloadBuilder) rung() *payloadBuilder {
	b.buf.Write(b.p.RungMarker)
	return b
}

func (b *payloadBuilder) file() *payloadBuilder {
	b.buf.Write(b.p.FileMarker)
	return b
}

func (b *payloadBuilder) branchStart() *payloadBuilder {
	b.buf.Write(b.p.BranchStartMarker)
	return b
}

func (b *payloadBuilder) branchLeg() *payloadBuilder {
	b.buf.Write(b.p.BranchLegMarker)
	return b
}

func (b *payloadBuilder) branchClose() *payloadBuilder {
	b.buf.Write(b.p.BranchCloseMarker)
	return b
}

func (b *payloadBuilder) bytes() []byte {
	return b.buf.Bytes()
}

// regBuilder constructs synthetic register storage streams.
type regBuilder struct {
	p   Params
	buf bytes.Buffer
}

func newRegBuilder() *regBuilder {
	return &regBuilder{p: DefaultParams()}
}

// header writes a register block header for the given file-type code.
func (b *regBuilder) header(typeCode byte, count, words int) *regBuilder {
	b.buf.Write(b.p.RegisterMarker)
	b.buf.WriteByte(typeCode)
	b.buf.WriteByte(0x00)
	b.buf.WriteByte(byte(count))
	b.buf.WriteByte(byte(count >> 8))
	b.buf.WriteByte(byte(words))
	b.buf.WriteByte(byte(words >> 8))
	for i := 0; i < 8; i++ {
		b.buf.WriteByte(0x00)
	}
	b.buf.WriteByte(0x00)
	return b
}

// words writes little-endian 16-bit words.
func (b *regBuilder) words(ws ...uint16) *regBuilder {
	for _, w := range ws {
		b.buf.WriteByte(byte(w))
		b.buf.WriteByte(byte(w >> 8))
	}
	return b
}

func (b *regBuilder) raw(bs ...byte) *regBuilder {
	b.buf.Write(bs)
	return b
}

func (b *regBuilder) bytes() []byte {
	return b.buf.Bytes()
}
