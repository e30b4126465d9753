package dnssecval

import "bytes"

// Canonicalizer — §4.2. Builds the exact byte sequence RFC 4034 §6
// defines as covered by one RRSIG, into the Environment's scratch
// buffer. The canonicalizer never mutates rrset's wire bytes; every
// lowering operation works on copies it makes itself.

// buildCanonicalStream builds the canonical signed message for sigRdata
// (a single RRSIG's RDATA) over rrset into env.Scratch, returning a
// diagnostic reason on failure. ok is false for any structural problem;
// the caller maps that to Bogus. A nil return for the byte slice with
// ok true cannot happen — ok false is always accompanied by a nil/empty
// result.
func buildCanonicalStream(env *Environment, rrset *RRset, sigRdata []byte) (stream []byte, reason string, ok bool) {
	if len(sigRdata) < rrsigFixedLen+1 {
		return nil, "rrsig rdata too short for fixed header", false
	}
	signerName := rrsigSignerName(sigRdata)
	if signerName == nil {
		return nil, "rrsig signer name invalid", false
	}
	sigHeaderLen := rrsigFixedLen + len(signerName)
	if sigHeaderLen > len(sigRdata) {
		return nil, "rrsig rdata truncated before signer name ends", false
	}

	scratch := env.Scratch
	scratch.Clear()

	// Sig header: type_covered .. key_tag, then signer name, lowercased.
	scratch.Write(sigRdata[:rrsigFixedLen])
	loweredSigner := make([]byte, len(signerName))
	if lowercaseDnameInto(loweredSigner, signerName) == 0 {
		return nil, "rrsig signer name failed to lowercase", false
	}
	scratch.Write(loweredSigner)

	origTTL := rrsigOrigTTL(sigRdata)
	sigLabels := rrsigLabels(sigRdata)

	ownerLabels := labelCount(rrset.Owner)
	ownerLen, ok := validateDname(rrset.Owner)
	if !ok {
		return nil, "rrset owner name invalid", false
	}

	var canonicalOwner []byte
	switch {
	case int(sigLabels) == ownerLabels:
		canonicalOwner = make([]byte, ownerLen)
		lowercaseDnameInto(canonicalOwner, rrset.Owner[:ownerLen])
	case int(sigLabels) < ownerLabels:
		strip := ownerLabels - int(sigLabels)
		remainder := stripLeftLabels(rrset.Owner, strip)
		if remainder == nil {
			return nil, "wildcard synthesis: owner name too short to strip", false
		}
		remLen, ok := validateDname(remainder)
		if !ok {
			return nil, "wildcard synthesis: remainder invalid", false
		}
		loweredRemainder := make([]byte, remLen)
		lowercaseDnameInto(loweredRemainder, remainder[:remLen])
		canonicalOwner = make([]byte, 0, len(wildcardLabel)+remLen)
		canonicalOwner = append(canonicalOwner, wildcardLabel...)
		canonicalOwner = append(canonicalOwner, loweredRemainder...)
	default:
		return nil, "rrsig labels field exceeds owner label count", false
	}

	order := canonicalSortedUniqueIndices(rrset)

	for _, idx := range order {
		raw := rrset.RawEntry(idx)
		if len(raw) < 2 {
			return nil, "data rr too short for rdlen", false
		}
		rdlen := int(raw[0])<<8 | int(raw[1])
		if len(raw) < 2+rdlen {
			return nil, "data rr rdlen exceeds entry length", false
		}
		rdata := raw[2 : 2+rdlen]
		canon := canonicalizeRDATA(rrset.Type, rdata)

		scratch.Write(canonicalOwner)
		scratch.WriteU16(rrset.Type)
		scratch.WriteU16(rrset.Class)
		scratch.WriteU32(origTTL)
		scratch.WriteU16(uint16(len(canon)))
		scratch.Write(canon)
	}

	return scratch.Bytes(), "", true
}

// canonicalSortedUniqueIndices returns the indices of rrset's data RRs
// (the [0, Count) partition) sorted into RFC 4034 §6.3 canonical order
// by unsigned byte-string comparison of each RR's raw RDATA, with
// bitwise-duplicate RDATA removed. It never modifies rrset.RRData;
// ordering is produced entirely by permuting a slice of indices.
func canonicalSortedUniqueIndices(rrset *RRset) []int {
	idx := rrset.dataIndices()
	rdataOf := func(i int) []byte {
		raw := rrset.RawEntry(i)
		if len(raw) < 2 {
			return nil
		}
		rdlen := int(raw[0])<<8 | int(raw[1])
		if len(raw) < 2+rdlen {
			return nil
		}
		return raw[2 : 2+rdlen]
	}

	insertionSort(idx, func(a, b int) bool {
		return bytes.Compare(rdataOf(a), rdataOf(b)) < 0
	})

	deduped := idx[:0:0]
	var prev []byte
	havePrev := false
	for _, i := range idx {
		r := rdataOf(i)
		if havePrev && bytes.Equal(prev, r) {
			continue
		}
		deduped = append(deduped, i)
		prev = r
		havePrev = true
	}
	return deduped
}

// insertionSort sorts idx in place using less. RRsets are small enough
// (bounded by one DNS message) that an O(n^2) sort is simpler and just
// as fast in practice than reaching for sort.Slice's reflection-based
// indirection; kept as its own function so the comparator and the
// dedup pass above read as one linear algorithm.
func insertionSort(idx []int, less func(a, b int) bool) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(idx[j], idx[j-1]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}
