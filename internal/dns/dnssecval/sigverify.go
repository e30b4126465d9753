package dnssecval

// Signature Verifier — §4.5. Verifies one RRSIG against one candidate
// DNSKEY. Preconditions are checked in the order the spec lists them so
// the diagnostic string always names the first thing that failed.

// requireZSKFlag gates whether the ZSK bit (flags & 0x0100) must be set
// on a candidate DNSKEY before it is considered eligible to verify a
// signature. RFC 4035 §5.3.1 says implementations SHOULD check this,
// not MUST; this package enforces it unconditionally, deliberately
// stricter, as a single policy switch per the design note this mirrors.
const requireZSKFlag = true

// verifySigAgainstKey implements §4.5 for rrset's signature entry at
// sigIdx against keySet's DNSKEY entry at keyIdx. rrsetOwnerLabels is
// recomputed internally; callers do not need to precompute it.
func verifySigAgainstKey(env *Environment, rrset *RRset, keySet *RRset, keyIdx, sigIdx int) (Verdict, string) {
	sigRdata := rrset.RData(sigIdx)
	if len(sigRdata) < rrsigFixedLen+1 {
		return Bogus, "rrsig rdata too short"
	}
	sigBlock := rrsigSignature(sigRdata)
	if len(sigBlock) == 0 {
		return Bogus, "rrsig carries no signature bytes"
	}

	keyRdata := keySet.RData(keyIdx)
	if keyRdata == nil {
		return Bogus, "dnskey rdata too short"
	}
	if requireZSKFlag && !dnskeyIsZSK(keyRdata) {
		return Bogus, "dnskey missing ZSK flag"
	}

	signerName := rrsigSignerName(sigRdata)
	if signerName == nil {
		return Bogus, "rrsig signer name does not parse"
	}
	if !equalNamesCI(signerName, keySet.Owner) {
		return Bogus, "rrsig signer name does not match dnskey owner"
	}

	if rrsigTypeCovered(sigRdata) != rrset.Type {
		return Bogus, "rrsig type_covered does not match rrset type"
	}
	if rrsigAlgorithm(sigRdata) != dnskeyAlgorithm(keyRdata) {
		return Bogus, "rrsig algorithm does not match dnskey algorithm"
	}
	if rrsigKeyTag(sigRdata) != computeKeyTag(keyRdata) {
		return Bogus, "rrsig key tag does not match dnskey key tag"
	}
	if int(rrsigLabels(sigRdata)) > labelCount(rrset.Owner) {
		return Bogus, "rrsig labels field exceeds rrset owner label count"
	}

	now := env.Clock.Now()
	if !dateRangeValid(now, rrsigInception(sigRdata), rrsigExpiration(sigRdata)) {
		return Bogus, "rrsig outside its validity window"
	}

	// ok is false only for a structural rejection; scratch allocation
	// failure panics rather than returning false, so this is not
	// conflating two recoverable outcomes into one verdict.
	stream, reason, ok := buildCanonicalStream(env, rrset, sigRdata)
	if !ok {
		return Bogus, reason
	}

	algo := rrsigAlgorithm(sigRdata)
	pubKey := dnskeyPublicKey(keyRdata)
	switch env.Crypto.Verify(algo, pubKey, stream, sigBlock) {
	case VerifyOK:
		return Secure, ""
	case VerifyBad:
		return Bogus, "signature does not verify"
	default:
		return Unchecked, "crypto backend could not complete verification"
	}
}
