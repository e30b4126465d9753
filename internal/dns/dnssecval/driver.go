package dnssecval

// Verification Driver — §4.6. Orchestrates try-all-signatures-against-
// all-matching-keys. A single Secure anywhere wins; try-order follows
// RRData index order in both partitions, which bounds worst-case cost
// via the first-match short-circuit.

// VerifySigAgainstKey verifies rrset's RRSIG at sigIdx against
// keySet's DNSKEY at keyIdx directly, with no algorithm/keytag
// prefiltering. This is §4.6(d), the single-pair case §4.5 builds on.
func VerifySigAgainstKey(env *Environment, rrset *RRset, keySet *RRset, keyIdx, sigIdx int) (Verdict, string) {
	return verifySigAgainstKey(env, rrset, keySet, keyIdx, sigIdx)
}

// VerifySigAgainstKeySet verifies rrset's RRSIG at sigIdx against every
// key in keySet whose algorithm and computed key tag match the
// signature, per §4.6(c). The first Secure short-circuits; if no key in
// keySet has a matching algorithm/keytag at all, or every matching key
// fails, the result is Bogus.
func VerifySigAgainstKeySet(env *Environment, rrset *RRset, keySet *RRset, sigIdx int) (Verdict, string) {
	sigRdata := rrset.RData(sigIdx)
	if sigRdata == nil {
		return Bogus, "rrsig rdata too short"
	}
	sigAlgo := rrsigAlgorithm(sigRdata)
	sigTag := rrsigKeyTag(sigRdata)

	matched := false
	for i := 0; i < keySet.Count; i++ {
		keyRdata := keySet.RData(i)
		if keyRdata == nil {
			continue
		}
		if dnskeyAlgorithm(keyRdata) != sigAlgo {
			continue
		}
		if computeKeyTag(keyRdata) != sigTag {
			continue
		}
		matched = true
		if v, reason := verifySigAgainstKey(env, rrset, keySet, i, sigIdx); v == Secure {
			return Secure, reason
		} else if v == Unchecked {
			// An internal error on one key does not preclude another
			// matching key from still verifying; keep trying.
			continue
		}
	}
	if !matched {
		return Bogus, "no appropriate key"
	}
	return Bogus, "no matching key verified this signature"
}

// VerifyKeyAgainstRRset verifies rrset against a single, caller-chosen
// DNSKEY in keySet, trying every RRSIG present. This is §4.6(b).
func VerifyKeyAgainstRRset(env *Environment, rrset *RRset, keySet *RRset, keyIdx int) (Verdict, string) {
	if rrset.RRSigCount == 0 {
		return Bogus, "no signatures"
	}
	for j := 0; j < rrset.RRSigCount; j++ {
		sigIdx := rrset.sigIndex(j)
		if sigIdx < 0 {
			continue
		}
		if v, reason := verifySigAgainstKey(env, rrset, keySet, keyIdx, sigIdx); v == Secure {
			return Secure, reason
		}
	}
	return Bogus, "no signature verified against the given key"
}

// VerifyRRsetAgainstKeySet verifies rrset against every key in keySet,
// trying every RRSIG present. This is §4.6(a), the entry point ordinary
// callers use. A single (RRSIG, DNSKEY) pair verifying anywhere is
// sufficient regardless of how many other broken sigs or keys are
// present.
func VerifyRRsetAgainstKeySet(env *Environment, rrset *RRset, keySet *RRset) (Verdict, string) {
	if rrset.RRSigCount == 0 {
		return Bogus, "no signatures"
	}
	for j := 0; j < rrset.RRSigCount; j++ {
		sigIdx := rrset.sigIndex(j)
		if sigIdx < 0 {
			continue
		}
		if v, reason := VerifySigAgainstKeySet(env, rrset, keySet, sigIdx); v == Secure {
			return Secure, reason
		}
	}
	return Bogus, "no signature in rrset verified against any key"
}
