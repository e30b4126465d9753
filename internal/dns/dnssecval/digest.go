package dnssecval

import "crypto/subtle"

// Digest Engine — §4.3. Authenticates a DS record against the DNSKEY it
// claims to summarize. This is the same digest construction
// packet.DNSRecord.ComputeDS uses when signing a zone
// (lowercased owner name | DNSKEY RDATA), run in reverse as a
// comparison instead of a generation.

// DSDigestAlgoIsSupported reports whether DS rrset entry j's digest
// algorithm is one the crypto backend can compute.
func DSDigestAlgoIsSupported(env *Environment, dsSet *RRset, j int) bool {
	dt := dsDigestType(dsSet.RData(j))
	if dt == 0 {
		return false
	}
	return env.Crypto.DigestSize(dt) > 0
}

// DSKeyAlgoIsSupported reports whether DS rrset entry j's algorithm
// field (the algorithm of the DNSKEY it refers to) is supported.
func DSKeyAlgoIsSupported(env *Environment, dsSet *RRset, j int) bool {
	algo := dsAlgorithm(dsSet.RData(j))
	if algo == 0 {
		return false
	}
	return env.Crypto.Supports(algo)
}

// DSDigestMatchDNSKey authenticates DNSKEY rrset entry i against DS
// rrset entry j: computes the digest of (lowercased DNSKEY owner name |
// DNSKEY RDATA) under the DS's digest algorithm and compares it,
// constant-time, to the DS's digest field.
func DSDigestMatchDNSKey(env *Environment, dnskeySet *RRset, i int, dsSet *RRset, j int) bool {
	dsRdata := dsSet.RData(j)
	if dsRdata == nil {
		return false
	}
	digestType := dsDigestType(dsRdata)
	expectedSize := env.Crypto.DigestSize(digestType)
	if expectedSize == 0 {
		return false
	}
	dsDig := dsDigest(dsRdata)
	if len(dsDig) != expectedSize {
		return false
	}

	dnskeyRdata := dnskeySet.RData(i)
	if dnskeyRdata == nil {
		return false
	}
	ownerLen, ok := validateDname(dnskeySet.Owner)
	if !ok {
		return false
	}

	scratch := env.Scratch
	scratch.Clear()
	lowered := make([]byte, ownerLen)
	if lowercaseDnameInto(lowered, dnskeySet.Owner[:ownerLen]) == 0 {
		return false
	}
	scratch.Write(lowered)
	scratch.Write(dnskeyRdata)

	computed, ok := env.Crypto.Hash(digestType, scratch.Bytes())
	if !ok || len(computed) != len(dsDig) {
		return false
	}
	return subtle.ConstantTimeCompare(computed, dsDig) == 1
}
