package dnssecval

import (
	"errors"

	"github.com/poyrazK/cloudDNS/internal/dns/packet"
)

// BuildRRset is the external-collaborator adapter: it turns the
// already-parsed []packet.DNSRecord slices a caller has after
// DNSPacket.FromBuffer into the wire-byte RRset container this package
// verifies. data is the RRset's own records; sigs is the RRSIGs that
// cover it (same owner/type/class). Both must share a common owner
// name, type, and class — BuildRRset does not itself group a raw
// answer section by type; that grouping is the caller's
// responsibility.
//
// Each entry is produced by re-encoding the record with
// packet.DNSRecord.Write — the same serialization a real signer's
// canonicalizer would have run over — then trimming the name/type/
// class/ttl prefix Write also emits, keeping only the <rdlen><rdata>
// span the verification core expects.
func BuildRRset(data []packet.DNSRecord, sigs []packet.DNSRecord) (*RRset, error) {
	if len(data) == 0 {
		return nil, errors.New("dnssecval: rrset has no data records")
	}

	first := data[0]
	ownerBuf := packet.NewBytePacketBuffer()
	if err := ownerBuf.WriteName(first.Name); err != nil {
		return nil, err
	}
	owner := make([]byte, ownerBuf.Position())
	copy(owner, ownerBuf.Buf[:ownerBuf.Position()])

	class := first.Class
	if class == 0 {
		class = 1 // IN
	}

	rrset := &RRset{
		Owner:      owner,
		Type:       uint16(first.Type),
		Class:      class,
		Count:      len(data),
		RRSigCount: len(sigs),
		RRData:     make([][]byte, 0, len(data)+len(sigs)),
	}

	for _, r := range data {
		entry, err := rdataEntryFromRecord(r)
		if err != nil {
			return nil, err
		}
		rrset.RRData = append(rrset.RRData, entry)
	}
	for _, r := range sigs {
		entry, err := rdataEntryFromRecord(r)
		if err != nil {
			return nil, err
		}
		rrset.RRData = append(rrset.RRData, entry)
	}

	return rrset, nil
}

// rdataEntryFromRecord re-encodes r and carves out the <rdlen><rdata>
// span from the result.
func rdataEntryFromRecord(r packet.DNSRecord) ([]byte, error) {
	buf := packet.NewBytePacketBuffer()
	if _, err := r.Write(buf); err != nil {
		return nil, err
	}
	total := buf.Position()

	if err := buf.Seek(0); err != nil {
		return nil, err
	}
	if _, err := buf.ReadName(); err != nil {
		return nil, err
	}
	if _, err := buf.Readu16(); err != nil { // type
		return nil, err
	}
	if _, err := buf.Readu16(); err != nil { // class
		return nil, err
	}
	if _, err := buf.Readu32(); err != nil { // ttl
		return nil, err
	}

	start := buf.Position()
	rdlen, err := buf.Readu16()
	if err != nil {
		return nil, err
	}
	end := start + 2 + int(rdlen)
	if end > total {
		return nil, errors.New("dnssecval: rdlen exceeds encoded record length")
	}

	raw, err := buf.GetRange(start, 2+int(rdlen))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}
