package dnssecval

// RR Accessor — §4.1. Every function here is a pure, allocation-free
// read over a raw RDATA slice (the bytes after the rdlen prefix, as
// returned by RRset.RData). On any short read the sentinel zero value
// or an empty/nil slice is returned; callers interpret that as
// "malformed RR" and propagate Bogus. Nothing here ever panics on
// attacker-controlled input.

// DNSKEY RDATA: flags(2) | protocol(1) | algorithm(1) | public_key(rest)
const dnskeyFixedLen = 4

// dnskeyFlags returns the DNSKEY flags field, or 0 if rdata is too
// short.
func dnskeyFlags(rdata []byte) uint16 {
	if len(rdata) < 2 {
		return 0
	}
	return uint16(rdata[0])<<8 | uint16(rdata[1])
}

// dnskeyIsZSK reports whether the ZSK bit (0x0100) is set.
func dnskeyIsZSK(rdata []byte) bool {
	return dnskeyFlags(rdata)&0x0100 != 0
}

// dnskeyProtocol returns the protocol octet, or 0 if rdata is too short.
func dnskeyProtocol(rdata []byte) uint8 {
	if len(rdata) < 3 {
		return 0
	}
	return rdata[2]
}

// dnskeyAlgorithm returns the algorithm octet, or 0 if rdata is too
// short.
func dnskeyAlgorithm(rdata []byte) uint8 {
	if len(rdata) < 4 {
		return 0
	}
	return rdata[3]
}

// dnskeyPublicKey returns the public-key material, or an empty slice if
// rdata is too short to contain the fixed prefix.
func dnskeyPublicKey(rdata []byte) []byte {
	if len(rdata) < dnskeyFixedLen {
		return nil
	}
	return rdata[dnskeyFixedLen:]
}

// DS RDATA: key_tag(2) | algorithm(1) | digest_type(1) | digest(rest)
const dsFixedLen = 4

func dsKeyTag(rdata []byte) uint16 {
	if len(rdata) < 2 {
		return 0
	}
	return uint16(rdata[0])<<8 | uint16(rdata[1])
}

func dsAlgorithm(rdata []byte) uint8 {
	if len(rdata) < 3 {
		return 0
	}
	return rdata[2]
}

func dsDigestType(rdata []byte) uint8 {
	if len(rdata) < 4 {
		return 0
	}
	return rdata[3]
}

func dsDigest(rdata []byte) []byte {
	if len(rdata) < dsFixedLen {
		return nil
	}
	return rdata[dsFixedLen:]
}

// RRSIG RDATA: type_covered(2) | algorithm(1) | labels(1) |
// original_ttl(4) | sig_expiration(4) | sig_inception(4) | key_tag(2) |
// signer_name(variable) | signature(rest). The fixed prefix before the
// signer name is 18 bytes.
const rrsigFixedLen = 18

func rrsigTypeCovered(rdata []byte) uint16 {
	if len(rdata) < 2 {
		return 0
	}
	return uint16(rdata[0])<<8 | uint16(rdata[1])
}

func rrsigAlgorithm(rdata []byte) uint8 {
	if len(rdata) < 3 {
		return 0
	}
	return rdata[2]
}

func rrsigLabels(rdata []byte) uint8 {
	if len(rdata) < 4 {
		return 0
	}
	return rdata[3]
}

func rrsigOrigTTL(rdata []byte) uint32 {
	if len(rdata) < 8 {
		return 0
	}
	return be32(rdata[4:8])
}

func rrsigExpiration(rdata []byte) uint32 {
	if len(rdata) < 12 {
		return 0
	}
	return be32(rdata[8:12])
}

func rrsigInception(rdata []byte) uint32 {
	if len(rdata) < 16 {
		return 0
	}
	return be32(rdata[12:16])
}

func rrsigKeyTag(rdata []byte) uint16 {
	if len(rdata) < 18 {
		return 0
	}
	return uint16(rdata[16])<<8 | uint16(rdata[17])
}

// rrsigSignerName returns the signer name bytes (from offset 18 up to
// and including the root terminator), or nil if rdata is too short or
// the name is malformed.
func rrsigSignerName(rdata []byte) []byte {
	if len(rdata) < rrsigFixedLen+1 {
		return nil
	}
	rest := rdata[rrsigFixedLen:]
	n, ok := validateDname(rest)
	if !ok {
		return nil
	}
	return rest[:n]
}

// rrsigSignature returns the trailing signature block, or nil if the
// signer name does not parse or no signature bytes remain.
func rrsigSignature(rdata []byte) []byte {
	name := rrsigSignerName(rdata)
	if name == nil {
		return nil
	}
	off := rrsigFixedLen + len(name)
	if off >= len(rdata) {
		return nil
	}
	return rdata[off:]
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
